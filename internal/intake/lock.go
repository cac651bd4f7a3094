// Package intake пересылает обращения граждан в сервис диспетчеризации.
package intake

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrAlreadyRunning - lock-файл держит живой процесс
var ErrAlreadyRunning = errors.New("intake: another instance is already running")

// Lock - эксклюзивный lock-файл экземпляра intake
type Lock struct {
	path string
	pid  int
}

// AcquireLock создает lock-файл с PID текущего процесса. Если файл уже
// есть, проверяется записанный PID: lock мертвого процесса удаляется и
// захват повторяется один раз.
func AcquireLock(path string) (*Lock, error) {
	return acquire(path, os.Getpid(), processAlive, true)
}

func acquire(path string, pid int, alive func(int) bool, retry bool) (*Lock, error) {
	err := publishPID(path, pid)
	if err == nil {
		return &Lock{path: path, pid: pid}, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("intake: create lock file %s: %w", path, err)
	}

	owner := readPID(path)
	if owner > 0 && alive(owner) {
		return nil, fmt.Errorf("%w (pid=%d); stop it or delete %s", ErrAlreadyRunning, owner, path)
	}
	if !retry {
		return nil, fmt.Errorf("intake: lock file %s reappeared after stale cleanup", path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("intake: remove stale lock file %s: %w", path, err)
	}
	return acquire(path, pid, alive, false)
}

// publishPID пишет PID во временный файл рядом и жестко связывает его с
// path. Link не перезаписывает существующий файл, поэтому lock появляется
// сразу с полным содержимым и пустым его никто не прочитает.
func publishPID(path string, pid int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.WriteString(strconv.Itoa(pid))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return os.Link(tmp.Name(), path)
}

// readPID возвращает 0, если файл не читается или содержит не число
func readPID(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0
	}
	return pid
}

// processAlive проверяет процесс сигналом 0. EPERM означает, что процесс
// есть, но принадлежит другому пользователю.
func processAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

func (l *Lock) Path() string { return l.path }

// Release удаляет lock-файл, если он все еще принадлежит этому процессу
func (l *Lock) Release() error {
	if readPID(l.path) != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("intake: release lock file %s: %w", l.path, err)
	}
	return nil
}
