// Package sandbox applies the two-stage seccomp filter and optional
// privilege drop described in SPEC_FULL.md §5: a broad stage1 filter before
// the capture handle is opened, a narrower stage2 filter once it is, and an
// optional setuid/setgid/chroot drop in between.
package sandbox

import (
	"fmt"
	"os/user"
	"strconv"

	seccompbpf "github.com/elastic/go-seccomp-bpf"
	"golang.org/x/sys/unix"

	"github.com/kpcyrd/sniffglue/internal/sandboxcfg"
)

// stage1Syscalls is the broader allowlist needed before the pcap handle is
// open: socket/bind-family calls plus everything stage2 also needs.
var stage1Syscalls = []string{
	"read", "write", "close", "poll", "select", "mmap", "mprotect", "munmap",
	"brk", "rt_sigaction", "rt_sigprocmask", "rt_sigreturn", "ioctl",
	"socket", "connect", "bind", "getsockname", "setsockopt", "getsockopt",
	"clone", "fork", "execve", "exit", "exit_group", "fcntl", "openat",
	"open", "stat", "fstat", "lstat", "getdents64", "nanosleep", "futex",
	"sched_yield", "setuid", "setgid", "setgroups", "chroot", "chdir",
}

// stage2Syscalls is the narrower set needed once the capture handle is
// already open and only the worker pool and sink remain to run: no more
// socket/bind/privilege-transition calls.
var stage2Syscalls = []string{
	"read", "write", "close", "poll", "select", "mmap", "mprotect", "munmap",
	"brk", "rt_sigaction", "rt_sigprocmask", "rt_sigreturn", "ioctl",
	"clone", "futex", "sched_yield", "exit", "exit_group", "fcntl",
	"nanosleep",
}

// ApplyStage1 installs the stage1 seccomp filter. It must run before the
// capture handle is opened.
func ApplyStage1() error {
	return applyFilter(stage1Syscalls)
}

// ApplyStage2 installs the stage2 seccomp filter. It must run after the
// capture handle is opened and before any worker goroutines are spawned.
func ApplyStage2() error {
	return applyFilter(stage2Syscalls)
}

func applyFilter(names []string) error {
	policy := seccompbpf.Policy{
		DefaultAction: seccompbpf.ActionErrno,
		Syscalls: []seccompbpf.SyscallGroup{
			{
				Action: seccompbpf.ActionAllow,
				Names:  names,
			},
		},
	}

	filter, err := policy.Assemble()
	if err != nil {
		return fmt.Errorf("sandbox: assemble seccomp policy: %w", err)
	}
	if err := seccompbpf.LoadFilter(filter); err != nil {
		return fmt.Errorf("sandbox: load seccomp filter: %w", err)
	}
	return nil
}

// DropPrivileges switches to the configured user and, if set, chroots into
// the configured directory. It must run after the capture handle is open
// (the handle needs the original privileges) and before ApplyStage2, since
// chroot/setuid/setgid aren't in the stage2 allowlist.
func DropPrivileges(cfg sandboxcfg.Sandbox) error {
	if cfg.Chroot != "" {
		if err := unix.Chroot(cfg.Chroot); err != nil {
			return fmt.Errorf("sandbox: chroot %q: %w", cfg.Chroot, err)
		}
		if err := unix.Chdir("/"); err != nil {
			return fmt.Errorf("sandbox: chdir after chroot: %w", err)
		}
	}

	if cfg.User == "" {
		return nil
	}

	u, err := user.Lookup(cfg.User)
	if err != nil {
		return fmt.Errorf("sandbox: lookup user %q: %w", cfg.User, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf("sandbox: parse uid: %w", err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return fmt.Errorf("sandbox: parse gid: %w", err)
	}

	if groups, err := u.GroupIds(); err == nil {
		gids := make([]int, 0, len(groups))
		for _, g := range groups {
			if n, err := strconv.Atoi(g); err == nil {
				gids = append(gids, n)
			}
		}
		if err := unix.Setgroups(gids); err != nil {
			return fmt.Errorf("sandbox: setgroups: %w", err)
		}
	}

	if err := unix.Setgid(gid); err != nil {
		return fmt.Errorf("sandbox: setgid: %w", err)
	}
	if err := unix.Setuid(uid); err != nil {
		return fmt.Errorf("sandbox: setuid: %w", err)
	}

	return nil
}
