// Package labels выдает ячейкам сетки короткие читаемые коды.
//
// Код зависит только от ранга идентификатора в лексикографическом порядке
// всех известных идентификаторов: первые 26 рангов получают буквы A..Z,
// следующие блоки по 26 получают номер группы через дефис (A-1..Z-1, A-2..).
// Добавление идентификатора, который сортируется раньше существующих,
// сдвигает коды всех последующих ячеек.
package labels

import (
	"sort"
	"strconv"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ForRank возвращает код для ранга (0-based)
func ForRank(rank int) string {
	if rank < 0 {
		return ""
	}
	letter := string(alphabet[rank%len(alphabet)])
	group := rank / len(alphabet)
	if group == 0 {
		return letter
	}
	return letter + "-" + strconv.Itoa(group)
}

// Assign строит отображение hexID -> код по полному набору известных
// идентификаторов. Дубликаты и пустые идентификаторы игнорируются.
func Assign(hexIDs []string) map[string]string {
	uniq := make(map[string]struct{}, len(hexIDs))
	sorted := make([]string, 0, len(hexIDs))
	for _, id := range hexIDs {
		if id == "" {
			continue
		}
		if _, ok := uniq[id]; ok {
			continue
		}
		uniq[id] = struct{}{}
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	out := make(map[string]string, len(sorted))
	for rank, id := range sorted {
		out[id] = ForRank(rank)
	}
	return out
}

// Lookup возвращает код или placeholder, если идентификатор неизвестен
func Lookup(labels map[string]string, hexID, placeholder string) string {
	if l, ok := labels[hexID]; ok {
		return l
	}
	return placeholder
}
