package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	// desktopEntryID must match the GTK application id so notifications and
	// launcher updates are attributed to the window.
	desktopEntryID = "com.github.bnema.dumbmessenger"
	appName        = "dumb-messenger"
	iconFileName   = desktopEntryID + ".svg"
	filePerm       = 0o644
	dirPerm        = 0o755
)

// desktopFileTemplate takes the executable path.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Dumb Messenger
GenericName=Messenger
Comment=Messenger in a window of its own
Exec=%s
Icon=%s
Terminal=false
Categories=Network;InstantMessaging;Chat;
StartupNotify=true
StartupWMClass=%s
`

// EntryStatus describes the installed desktop entry.
type EntryStatus struct {
	DesktopFilePath      string
	DesktopFileInstalled bool
	IconFilePath         string
	IconInstalled        bool
	ExecutablePath       string
}

// EntryInstaller writes the desktop entry and icon into XDG_DATA_HOME.
type EntryInstaller struct {
	dataHome        string
	updateDesktopDB string
	executable      func() (string, error)
}

// NewEntryInstaller creates an installer for the current user.
func NewEntryInstaller() (*EntryInstaller, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	inst := &EntryInstaller{dataHome: dataHome, executable: executablePath}
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		inst.updateDesktopDB = path
	}
	return inst, nil
}

func (e *EntryInstaller) desktopFilePath() string {
	return filepath.Join(e.dataHome, "applications", desktopEntryID+".desktop")
}

func (e *EntryInstaller) iconFilePath() string {
	return filepath.Join(e.dataHome, "icons", "hicolor", "scalable", "apps", iconFileName)
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// Status reports what is currently installed.
func (e *EntryInstaller) Status(context.Context) EntryStatus {
	status := EntryStatus{
		DesktopFilePath: e.desktopFilePath(),
		IconFilePath:    e.iconFilePath(),
	}
	if _, err := os.Stat(status.DesktopFilePath); err == nil {
		status.DesktopFileInstalled = true
	}
	if _, err := os.Stat(status.IconFilePath); err == nil {
		status.IconInstalled = true
	}
	if path, err := e.executable(); err == nil {
		status.ExecutablePath = path
	}
	return status
}

// Install writes the desktop file and the icon.
func (e *EntryInstaller) Install(ctx context.Context, icon []byte) (EntryStatus, error) {
	log := logging.FromContext(ctx)

	execPath, err := e.executable()
	if err != nil {
		return EntryStatus{}, err
	}

	desktopPath := e.desktopFilePath()
	content := fmt.Sprintf(desktopFileTemplate, execPath, desktopEntryID, desktopEntryID)
	if err := writeFile(desktopPath, []byte(content)); err != nil {
		return EntryStatus{}, fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file installed")

	if len(icon) > 0 {
		if err := writeFile(e.iconFilePath(), icon); err != nil {
			return EntryStatus{}, fmt.Errorf("write icon file: %w", err)
		}
		log.Info().Str("path", e.iconFilePath()).Msg("icon file installed")
	}

	e.refreshDatabase(ctx)
	return e.Status(ctx), nil
}

// Remove deletes the desktop file and icon. Missing files are not an error.
func (e *EntryInstaller) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)

	for _, path := range []string{e.desktopFilePath(), e.iconFilePath()} {
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("remove %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("removed")
	}

	e.refreshDatabase(ctx)
	return nil
}

func (e *EntryInstaller) refreshDatabase(ctx context.Context) {
	if e.updateDesktopDB == "" {
		return
	}
	dir := filepath.Dir(e.desktopFilePath())
	if err := exec.CommandContext(ctx, e.updateDesktopDB, dir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}
