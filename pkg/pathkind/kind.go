package pathkind

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MacroPower/xpath/pkg/xpath"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

var (
	ErrNotAbs  = errors.New("not an absolute path")
	ErrNotRel  = errors.New("not a relative path")
	ErrNotDir  = errors.New("not a directory")
	ErrNotFile = errors.New("not a file")

	ErrDirNotExist  = fmt.Errorf("dir %w", xpatherrors.ErrNotExist)
	ErrFileNotExist = fmt.Errorf("file %w", xpatherrors.ErrNotExist)
)

// CheckError reports a path that does not match its kind.
type CheckError struct {
	// Err is one of the Err* sentinels of this package.
	Err  error
	Path xpath.Path
}

func (e *CheckError) Error() string {
	return e.Err.Error() + ": " + e.Path.Contracted().String()
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// Is matches [xpatherrors.ErrWrongKind] for paths that exist, or could
// exist, but are the wrong kind.
func (e *CheckError) Is(target error) bool {
	if target != xpatherrors.ErrWrongKind {
		return false
	}

	switch e.Err {
	case ErrNotAbs, ErrNotRel, ErrNotDir, ErrNotFile:
		return true
	default:
		return false
	}
}

// Kind restricts the paths a [Typed] value may hold.
type Kind interface {
	// Name is the name of the wrapper type, used by GoString.
	Name() string
	// Check returns p, possibly anchored, or an error if p is not of this
	// kind.
	Check(p xpath.Path) (xpath.Path, error)
}

type (
	// AnyKind accepts every path.
	AnyKind struct{}
	// AbsKind accepts absolute paths.
	AbsKind struct{}
	// RelKind accepts relative paths.
	RelKind struct{}
	// DirKind accepts absolute paths that are a directory or don't exist.
	DirKind struct{}
	// FileKind accepts absolute paths that are a file or don't exist.
	FileKind struct{}
	// ExistingDirKind accepts absolute paths to an existing directory.
	ExistingDirKind struct{}
	// ExistingFileKind accepts absolute paths to an existing file.
	ExistingFileKind struct{}
)

func (AnyKind) Name() string { return "AnyPath" }

func (AnyKind) Check(p xpath.Path) (xpath.Path, error) {
	return p, nil
}

func (AbsKind) Name() string { return "AbsPath" }

func (AbsKind) Check(p xpath.Path) (xpath.Path, error) {
	return Absolute(p)
}

func (RelKind) Name() string { return "RelPath" }

func (RelKind) Check(p xpath.Path) (xpath.Path, error) {
	if p.IsAbs() {
		return xpath.Path{}, &CheckError{Err: ErrNotRel, Path: p}
	}

	return p, nil
}

func (DirKind) Name() string { return "AbsDir" }

func (DirKind) Check(p xpath.Path) (xpath.Path, error) {
	abs, err := Absolute(p)
	if err != nil {
		return xpath.Path{}, err
	}

	if err := CheckDir(abs); err != nil && !errors.Is(err, ErrDirNotExist) {
		return xpath.Path{}, err
	}

	return abs, nil
}

func (FileKind) Name() string { return "AbsFile" }

func (FileKind) Check(p xpath.Path) (xpath.Path, error) {
	abs, err := Absolute(p)
	if err != nil {
		return xpath.Path{}, err
	}

	if err := CheckFile(abs); err != nil && !errors.Is(err, ErrFileNotExist) {
		return xpath.Path{}, err
	}

	return abs, nil
}

func (ExistingDirKind) Name() string { return "ExistingDir" }

func (ExistingDirKind) Check(p xpath.Path) (xpath.Path, error) {
	abs, err := Absolute(p)
	if err != nil {
		return xpath.Path{}, err
	}

	return abs, CheckDir(abs)
}

func (ExistingFileKind) Name() string { return "ExistingFile" }

func (ExistingFileKind) Check(p xpath.Path) (xpath.Path, error) {
	abs, err := Absolute(p)
	if err != nil {
		return xpath.Path{}, err
	}

	return abs, CheckFile(abs)
}

// Absolute anchors a relative path to the working directory of its context,
// or to the home directory for a path contracted to "~". Absolute paths are
// returned unchanged.
func Absolute(p xpath.Path) (xpath.Path, error) {
	if p.IsAbs() {
		return p, nil
	}

	anchor := xpath.Path.Cwd
	if p.Marker() == xpath.HomeDir {
		anchor = xpath.Path.Home
	}

	dir, err := anchor(p)
	if err != nil {
		return xpath.Path{}, fmt.Errorf("anchor %s: %w", p, err)
	}

	if !dir.IsAbs() {
		return xpath.Path{}, &CheckError{Err: ErrNotAbs, Path: dir}
	}

	return dir.Join(p.Segments()...)
}

// CheckDir returns an error unless p is an existing directory.
func CheckDir(p xpath.Path) error {
	info, err := os.Stat(p.String())

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &CheckError{Err: ErrDirNotExist, Path: p}
	case err != nil:
		return fmt.Errorf("stat %s: %w", p.Contracted(), err)
	case !info.IsDir():
		return &CheckError{Err: ErrNotDir, Path: p}
	}

	return nil
}

// CheckFile returns an error unless p is an existing file that is not a
// directory.
func CheckFile(p xpath.Path) error {
	info, err := os.Stat(p.String())

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &CheckError{Err: ErrFileNotExist, Path: p}
	case err != nil:
		return fmt.Errorf("stat %s: %w", p.Contracted(), err)
	case info.IsDir():
		return &CheckError{Err: ErrNotFile, Path: p}
	}

	return nil
}
