package stream

import "fmt"

type formatKind int

const (
	formatLine formatKind = iota
	formatAll
	formatBytes
)

// Format selects what a buffered read produces: the next line, the rest
// of the channel, or a fixed number of bytes.
type Format struct {
	kind formatKind
	n    int
}

// Line reads the next newline-delimited line, delimiter stripped.
var Line = Format{kind: formatLine}

// All reads the remainder of the channel until EOF.
var All = Format{kind: formatAll}

// Bytes reads up to n bytes.
func Bytes(n int) Format {
	return Format{kind: formatBytes, n: n}
}

// ReadFormats performs one buffered read per format, in order. When no
// format is given it defaults to a single line read. The first failing
// read aborts with its error; results of earlier reads are returned
// alongside it.
func (b *Buffer) ReadFormats(formats ...Format) ([][]byte, error) {
	if len(formats) == 0 {
		formats = []Format{Line}
	}

	results := make([][]byte, 0, len(formats))
	for _, f := range formats {
		var (
			data []byte
			err  error
		)
		switch f.kind {
		case formatLine:
			data, err = b.ReadLine()
		case formatAll:
			data, err = b.ReadAll()
		case formatBytes:
			data, err = b.ReadN(f.n)
		default:
			err = fmt.Errorf("unknown read format %d", f.kind)
		}
		if err != nil {
			return results, err
		}
		results = append(results, data)
	}

	return results, nil
}

// WriteValues appends the string representation of each value to the
// output buffer. Strings and byte slices are written as-is, everything
// else through fmt.Sprint. The total byte count is returned. Data is not
// handed to the underlying channel until Flush is called.
func (b *Buffer) WriteValues(values ...interface{}) (int, error) {
	total := 0
	for _, v := range values {
		var (
			n   int
			err error
		)
		switch val := v.(type) {
		case string:
			n, err = b.w.WriteString(val)
		case []byte:
			n, err = b.w.Write(val)
		default:
			n, err = b.w.WriteString(fmt.Sprint(val))
		}
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
