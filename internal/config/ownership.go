package config

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// FixOwnership hands path, and any directories between it and the home
// directory, to the owner of the home directory. It only acts when running
// as root under a home that belongs to someone else, as happens with sudo or
// in dev containers.
func FixOwnership(path string) {
	if os.Getuid() != 0 {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return
	}
	uid, ok := ownerOf(home)
	if !ok || uid == 0 {
		return
	}
	gid, _ := groupOf(home)

	_ = os.Lchown(path, uid, gid)

	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		rel, err := filepath.Rel(home, dir)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return
		}
		if owner, ok := ownerOf(dir); !ok || owner == uid {
			return
		}
		_ = os.Lchown(dir, uid, gid)
	}
}

func ownerOf(path string) (int, bool) {
	st, ok := statT(path)
	if !ok {
		return 0, false
	}
	return int(st.Uid), true
}

func groupOf(path string) (int, bool) {
	st, ok := statT(path)
	if !ok {
		return 0, false
	}
	return int(st.Gid), true
}

func statT(path string) (*syscall.Stat_t, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	return st, ok
}
