package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the location of the ledger file, relative to the application root.
const DefaultPath = "data/transactions.json"

// LoadState tells where the ledger returned by Load comes from.
type LoadState int

const (
	// Loaded means the ledger was decoded from the file.
	Loaded LoadState = iota
	// Missing means there was no file, the ledger is empty.
	Missing
	// Corrupt means the file could not be read or decoded, the ledger is
	// empty and the file was left untouched.
	Corrupt
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// LoadStatus is the outcome of Load.
type LoadStatus struct {
	State LoadState
	Cause error // why the file was Corrupt, nil otherwise
}

// Fallback reports whether the ledger is an empty stand-in for the file.
func (s LoadStatus) Fallback() bool { return s.State != Loaded }

// Load reads the ledger file at path.
//
// Load never fails: a missing or corrupted file yields an empty ledger, the
// status tells which case happened. A corrupted file is only overwritten by
// an explicit Save.
func Load(path string) (*Ledger, LoadStatus) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), LoadStatus{State: Missing}
	}
	if err != nil {
		return NewLedger(), LoadStatus{State: Corrupt, Cause: fmt.Errorf("could not open ledger file %q: %w", path, err)}
	}
	defer f.Close()

	ledger, err := Decode(f)
	if err != nil {
		return NewLedger(), LoadStatus{State: Corrupt, Cause: fmt.Errorf("could not decode ledger file %q: %w", path, err)}
	}
	return ledger, LoadStatus{State: Loaded}
}

// Save writes the whole ledger to path.
//
// The content is first written to a temporary file next to path, which then
// replaces path. If anything fails before that, path is left untouched.
// Missing parent directories are created.
func Save(path string, ledger *Ledger) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for ledger %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Encode(tmp, ledger); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger %q: %w", path, err)
	}
	return nil
}
