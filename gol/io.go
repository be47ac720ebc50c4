package gol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadBoard parses the text board format: a "<width>,<height>" header followed
// by one line per row where 'x' marks a live cell. Short or missing rows are
// dead-padded and lines past the last row are ignored.
func ReadBoard(r io.Reader) (*Board, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && (err != io.EOF || header == "") {
		if err == io.EOF {
			return nil, &IOError{Op: "read", Err: fmt.Errorf("%w: missing header", ErrMalformedBoard)}
		}
		return nil, &IOError{Op: "read", Err: err}
	}
	width, height, err := parseHeader(header)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, &IOError{Op: "read", Err: fmt.Errorf("%w: %v", ErrMalformedBoard, err)}
	}

	for y := 0; y < height; y++ {
		line, err := readLine(br)
		if err != nil && err != io.EOF {
			return nil, &IOError{Op: "read", Err: err}
		}
		for x := 0; x < width && x < len(line); x++ {
			b.SetCell(x, y, line[x] == 'x')
		}
		if err == io.EOF {
			break
		}
	}
	return b, nil
}

// readLine returns the next line without its terminator. A final line with no
// newline is returned together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

func parseHeader(header string) (int, int, error) {
	parts := strings.Split(header, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q is not <width>,<height>", ErrMalformedBoard, header)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width: %v", ErrMalformedBoard, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height: %v", ErrMalformedBoard, err)
	}
	return width, height, nil
}

// WriteBoard writes b in the same format ReadBoard accepts, every row fully
// padded with '.'.
func WriteBoard(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d,%d\n", b.Width, b.Height); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if _, err := bw.WriteString(b.String()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// LoadBoard reads a board file from path.
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	b, err := ReadBoard(f)
	if err != nil {
		if ioErr, ok := err.(*IOError); ok {
			ioErr.Op, ioErr.Path = "load", path
		}
		return nil, err
	}
	return b, nil
}

// SaveBoard writes b to path, replacing any existing file.
func SaveBoard(path string, b *Board) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := WriteBoard(f, b); err != nil {
		f.Close()
		if ioErr, ok := err.(*IOError); ok {
			ioErr.Op, ioErr.Path = "save", path
		}
		return err
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
