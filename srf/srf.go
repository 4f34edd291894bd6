//Package srf reads and writes stoichiometry record files: logs of engine
//results (balanced reactions, molar masses) stored as compressed JSON lines.
//Interactive tools use them to keep a session history that can be reloaded
//or shipped to another program. The file suffix selects the compression:
//".srf" (or anything else) is zstd, ".srfz" is gzip and ".srfr" is flate.
package srf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	stoich "github.com/rmera/gostoich"
)

//Write!
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	records   int
}

//NewWriter creates a record file. The optional compressionLevel is honored
//by the gzip and flate formats; zstd always uses its best-compression mode.
func NewWriter(name string, compressionLevel ...int) (*Writer, error) {
	level := 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(Writer)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, level) }
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch format(name) {
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = zstdwriter
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.filename = name
	S.writeable = true
	return S, nil
}

//WNext appends one record to the file.
func (S *Writer) WNext(rec *stoich.JSONRecord) error {
	if !S.writeable {
		return Error{FileUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if rec == nil {
		return Error{NilRecord, S.filename, []string{"WNext"}, true}
	}
	if err := rec.Send(S.h); err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	S.records++
	return nil
}

//Len returns the number of records written so far.
func (S *Writer) Len() int {
	return S.records
}

//Close flushes and closes the file. The Writer can not be used afterwards.
func (S *Writer) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
}

//Read!
type Reader struct {
	f        *os.File
	zr       io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
	records  int
}

//*zstd.Decoder's Close does not return an error, so it does not implement
//io.ReadCloser by itself.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

//NewReader opens a record file written by NewWriter. The compression is
//taken from the file suffix, as in NewWriter.
func NewReader(name string) (*Reader, error) {
	S := new(Reader)
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewReader"}, true}
	}
	switch format(name) {
	case 'z':
		S.zr, err = gzip.NewReader(S.f)
	case 'r':
		S.zr = flate.NewReader(S.f)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(S.f)
		if err == nil {
			S.zr = stdql{d.Close, d}
		}
	}
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"NewReader"}, true}
	}
	S.h = bufio.NewReader(S.zr)
	S.filename = name
	S.readable = true
	return S, nil
}

//Next returns the next record in the file. When the file is cleanly
//exhausted the returned error satisfies LastRecordError, which callers
//should filter out as a normal termination.
func (S *Reader) Next() (*stoich.JSONRecord, error) {
	if !S.readable {
		return nil, Error{FileUnIniRead, S.filename, []string{"Next"}, true}
	}
	rec, err := stoich.ReadJSONRecord(S.h)
	if err == io.EOF {
		return nil, lastRecordError{fileName: S.filename}
	}
	if err != nil {
		return nil, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	S.records++
	return rec, nil
}

//Len returns the number of records read so far.
func (S *Reader) Len() int {
	return S.records
}

//Close closes the file. The Reader can not be used afterwards.
func (S *Reader) Close() {
	if S == nil {
		return
	}
	if S.readable {
		S.zr.Close()
		S.f.Close()
	}
	S.readable = false
}

//format returns the compression selector: the last letter of the file name.
func format(name string) byte {
	l := strings.ToLower(name)
	return l[len(l)-1]
}

//Errors

//Error is the general structure for record-file errors. It fulfills
//stoich.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("srf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing record file was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	FileUnIniRead  = "File object uninitialized to read"
	FileUnIniWrite = "File object uninitialized to write"
	NilRecord      = "Given nil record"
)

//LastRecordError is returned by Reader.Next on a clean end of file. Its
//extra method does nothing; it only separates this harmless condition from
//real errors in a type switch.
type LastRecordError interface {
	stoich.Error
	FileName() string
	NormalLastRecordTermination()
}

//lastRecordError implements LastRecordError
type lastRecordError struct {
	deco     []string
	fileName string
}

//lastRecordError does nothing
func (E lastRecordError) NormalLastRecordTermination() {}

func (E lastRecordError) FileName() string { return E.fileName }

func (E lastRecordError) Error() string { return "EOF" }

func (E lastRecordError) Critical() bool { return false }

func (E lastRecordError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
