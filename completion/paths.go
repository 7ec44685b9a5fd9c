package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/napalu/flagcomp/env"
)

// CompletionPaths is where a shell looks for per-user launcher scripts
type CompletionPaths struct {
	Primary  string
	Fallback string // used when Primary cannot be created
	Comment  string // how the shell picks scripts up from Primary
}

// userDirs holds the base directories the launcher locations are derived from
type userDirs struct {
	home   string
	data   string
	config string
}

// resolveUserDirs applies XDG_DATA_HOME and XDG_CONFIG_HOME outside Windows. Relative
// values are ignored, as the XDG base directory rules require.
func resolveUserDirs(r env.Resolver, goos, home string) userDirs {
	d := userDirs{
		home:   home,
		data:   filepath.Join(home, ".local", "share"),
		config: filepath.Join(home, ".config"),
	}
	if goos == "windows" {
		return d
	}
	if dir := r.Get("XDG_DATA_HOME"); filepath.IsAbs(dir) {
		d.data = dir
	}
	if dir := r.Get("XDG_CONFIG_HOME"); filepath.IsAbs(dir) {
		d.config = dir
	}

	return d
}

// completionPaths maps a shell to its directories. pwshCore selects between PowerShell 7
// and Windows PowerShell, whose profile folders differ; it only matters on Windows.
func completionPaths(goos string, d userDirs, shell string, pwshCore bool) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(d.data, "bash-completion", "completions"),
			Fallback: filepath.Join(d.home, ".bash_completion.d"),
			Comment:  "loaded on demand by bash-completion 2",
		}, nil
	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(d.home, ".zsh", "completion"),
			Fallback: filepath.Join(d.home, ".zfunc"),
			Comment:  "add the directory to fpath before calling compinit",
		}, nil
	case "fish":
		return CompletionPaths{
			Primary:  filepath.Join(d.config, "fish", "completions"),
			Fallback: filepath.Join(d.data, "fish", "completions"),
			Comment:  "loaded on demand by fish",
		}, nil
	case "powershell":
		primary := filepath.Join(d.config, "powershell", "Completions")
		if goos == "windows" {
			profile := "WindowsPowerShell"
			if pwshCore {
				profile = "PowerShell"
			}
			primary = filepath.Join(d.home, "Documents", profile, "Completions")
		}
		return CompletionPaths{
			Primary:  primary,
			Fallback: filepath.Join(d.data, "powershell", "Completions"),
			Comment:  "dot-source the script from $PROFILE",
		}, nil
	default:
		return CompletionPaths{}, fmt.Errorf("%w: %q", ErrUnsupportedShell, shell)
	}
}

// GetCompletionPaths returns the per-user directories in which shell looks for
// launcher scripts on this operating system
func GetCompletionPaths(r env.Resolver, shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	pwshCore := false
	if runtime.GOOS == "windows" && shell == "powershell" {
		_, err := exec.LookPath("pwsh")
		pwshCore = err == nil
	}

	return completionPaths(runtime.GOOS, resolveUserDirs(r, runtime.GOOS, home), shell, pwshCore)
}

// ensurePermission sets perm on path unless it already has it. Windows has no POSIX
// permission bits, so only existence is checked there.
func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if runtime.GOOS == "windows" || info.Mode().Perm() == perm {
		return nil
	}

	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s to %o: %w", path, perm, err)
	}

	return nil
}
