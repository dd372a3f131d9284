package doxygen

import (
	"context"
	"encoding/xml"
	"io/fs"
	"os"

	"gitlab.com/tozd/go/errors"
)

// IndexFile is the name of the index document inside an XML directory.
const IndexFile = "index.xml"

// Dir reads Doxygen XML documents from a file system.
type Dir struct {
	fsys fs.FS
}

// OpenDir returns a Dir reading from the directory at path.
func OpenDir(path string) *Dir {
	return &Dir{fsys: os.DirFS(path)}
}

// NewDir returns a Dir reading from fsys.
func NewDir(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys}
}

// Index loads index.xml.
func (d *Dir) Index(ctx context.Context) (*Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	var idx Index
	if err := d.decode(IndexFile, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Compound loads <refid>.xml and returns the compounddef with that id.
func (d *Dir) Compound(refid string) (*CompoundDef, error) {
	var file CompoundFile
	if err := d.decode(refid+".xml", &file); err != nil {
		return nil, err
	}
	for i := range file.Compounds {
		if file.Compounds[i].ID == refid {
			return &file.Compounds[i], nil
		}
	}
	if len(file.Compounds) == 1 {
		return &file.Compounds[0], nil
	}
	return nil, errors.Errorf("%s.xml: no compounddef with id %q", refid, refid)
}

func (d *Dir) decode(name string, v any) error {
	f, err := d.fsys.Open(name)
	if err != nil {
		return errors.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()
	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return errors.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
