// Package snapshot persists Frames as lz4-compressed binary snapshots,
// and restores them.
package snapshot

import (
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pierrec/lz4"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

func init() {
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register("")
	gob.Register(time.Time{})
}

// column type tags stored within a snapshot
const (
	tagBool      = "bool"
	tagInt64     = "int64"
	tagFloat64   = "float64"
	tagTime      = "time"
	tagVarString = "varstring"
)

type columnTag struct {
	Kind   string
	Format string // layout for datetime columns
}

// frameSnapshot is the serialized form of a Frame
type frameSnapshot struct {
	ID          string
	Names       []string
	Tags        []columnTag
	Columns     [][]interface{}
	RowNames    []string
	HasRowNames bool
}

// Write serializes and compresses a Frame to a write stream, returning
// the generated snapshot id
func Write(w io.Writer, f *wrangling.Frame) (string, error) {
	snap := frameSnapshot{
		ID:          uuid.NewString(),
		Names:       f.Schema().ColumnNames(),
		HasRowNames: f.HasRowNames(),
	}
	if snap.HasRowNames {
		snap.RowNames = f.RowNames()
	}
	for _, colType := range f.Schema().ColumnTypes() {
		tag, err := tagFor(colType)
		if err != nil {
			return "", err
		}
		snap.Tags = append(snap.Tags, tag)
	}
	for _, name := range snap.Names {
		values, err := f.ColumnValues(name)
		if err != nil {
			return "", err
		}
		snap.Columns = append(snap.Columns, values)
	}
	compressor := lz4.NewWriter(w)
	if err := gob.NewEncoder(compressor).Encode(snap); err != nil {
		return "", err
	}
	if err := compressor.Close(); err != nil {
		return "", err
	}
	return snap.ID, nil
}

// Read decompresses and deserializes a Frame from a read stream,
// returning the Frame along with its snapshot id
func Read(r io.Reader) (*wrangling.Frame, string, error) {
	var snap frameSnapshot
	decompressor := lz4.NewReader(r)
	if err := gob.NewDecoder(decompressor).Decode(&snap); err != nil {
		return nil, "", err
	}
	specs := make([]wrangling.ColumnSpec, len(snap.Names))
	for i, name := range snap.Names {
		colType, err := typeFor(snap.Tags[i])
		if err != nil {
			return nil, "", err
		}
		specs[i] = wrangling.ColumnSpec{Name: name, Type: colType, Values: snap.Columns[i]}
	}
	f, err := wrangling.BuildFrame(specs...)
	if err != nil {
		return nil, "", err
	}
	if snap.HasRowNames {
		if err := f.SetRowNames(snap.RowNames); err != nil {
			return nil, "", err
		}
	}
	return f, snap.ID, nil
}

func tagFor(colType wrangling.ColumnType) (columnTag, error) {
	switch t := colType.(type) {
	case *wrangling.BoolColumnType:
		return columnTag{Kind: tagBool}, nil
	case *wrangling.Int64ColumnType:
		return columnTag{Kind: tagInt64}, nil
	case *wrangling.Float64ColumnType:
		return columnTag{Kind: tagFloat64}, nil
	case *wrangling.TimeColumnType:
		return columnTag{Kind: tagTime, Format: t.GetFormat()}, nil
	case *wrangling.VarStringColumnType:
		return columnTag{Kind: tagVarString}, nil
	default:
		return columnTag{}, fmt.Errorf("snapshots do not support column type %T", colType)
	}
}

func typeFor(tag columnTag) (wrangling.ColumnType, error) {
	switch tag.Kind {
	case tagBool:
		return &wrangling.BoolColumnType{}, nil
	case tagInt64:
		return &wrangling.Int64ColumnType{}, nil
	case tagFloat64:
		return &wrangling.Float64ColumnType{}, nil
	case tagTime:
		return &wrangling.TimeColumnType{Format: tag.Format}, nil
	case tagVarString:
		return &wrangling.VarStringColumnType{}, nil
	default:
		return nil, fmt.Errorf("unknown column type tag %q", tag.Kind)
	}
}
