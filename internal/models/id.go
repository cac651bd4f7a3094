package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID - идентификатор сущности. Коллаборатор в разных местах отдает
// идентификаторы то строкой, то числом: число приводится к той же строке,
// которую дал бы String(id) на стороне сервиса, строка берется как есть.
type ID string

// UnmarshalJSON принимает строку, число или null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = NormalizeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = numberID(n)
	return nil
}

// NormalizeID готовит строковый идентификатор (параметр пути, поле формы) к
// использованию в качестве ключа. Обрезаются только пробелы: "007" и "7"
// остаются разными идентификаторами.
func NormalizeID(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

// numberID: 12, 12.0 и 1.2e1 дают "12", дробные остаются дробными
func numberID(n json.Number) ID {
	if i, err := n.Int64(); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	f, err := n.Float64()
	if err != nil {
		return ID(n.String())
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return ID(strconv.FormatInt(int64(f), 10))
	}
	return ID(strconv.FormatFloat(f, 'f', -1, 64))
}

func (id ID) String() string { return string(id) }
