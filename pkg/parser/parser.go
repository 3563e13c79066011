package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotObject is returned when a top-level JSON value is not an object.
var ErrNotObject = errors.New("JSON value is not an object")

// Parser handles reading JSON and JSONL files
type Parser struct {
	file    *os.File
	isJSONL bool
	tmpFile string // Path to temporary file, if created

	// Stateful readers
	decoder   *json.Decoder
	scanner   *bufio.Scanner
	bufReader *bufio.Reader

	startArrayChecked bool
	inArray           bool
	done              bool
}

// NewParser creates a new parser for the given file
// Special cases:
// - Empty string or "-" reads from stdin
// - Strings starting with '{' or '[' are treated as inline JSON
func NewParser(filename string) (*Parser, error) {
	var file *os.File
	var err error
	var isJSONL bool
	var tmpFile string

	if len(filename) > 0 && (filename[0] == '{' || filename[0] == '[') {
		tmpFileHandle, err := os.CreateTemp("", "cursormock-inline-*.json")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		tmpFile = tmpFileHandle.Name()
		if _, err := tmpFileHandle.WriteString(filename); err != nil {
			tmpFileHandle.Close()
			os.Remove(tmpFile)
			return nil, fmt.Errorf("failed to write inline JSON: %w", err)
		}
		if _, err := tmpFileHandle.Seek(0, io.SeekStart); err != nil {
			tmpFileHandle.Close()
			os.Remove(tmpFile)
			return nil, fmt.Errorf("failed to seek: %w", err)
		}
		file = tmpFileHandle
	} else if filename == "" || filename == "-" {
		file = os.Stdin
	} else {
		file, err = os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		isJSONL = IsJSONLPath(filename)
	}

	p := &Parser{
		file:    file,
		isJSONL: isJSONL,
		tmpFile: tmpFile,
	}

	p.initReader()
	return p, nil
}

// IsJSONLPath reports whether a file name carries the JSON Lines extension.
func IsJSONLPath(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".jsonl")
}

func (p *Parser) initReader() {
	if p.isJSONL {
		p.scanner = bufio.NewScanner(p.file)
	} else {
		// Use bufio.Reader to allow peeking
		p.bufReader = bufio.NewReader(p.file)
		p.decoder = json.NewDecoder(p.bufReader)
		p.decoder.UseNumber()
	}
}

// Close closes the underlying file and cleans up any temporary files
func (p *Parser) Close() error {
	if p.file == os.Stdin {
		return nil
	}
	err := p.file.Close()
	if p.tmpFile != "" {
		os.Remove(p.tmpFile)
	}
	return err
}

// IsJSONL returns whether the parser is treating the file as JSONL
func (p *Parser) IsJSONL() bool {
	return p.isJSONL
}

// Read reads the next record. It returns io.EOF when no record is left.
func (p *Parser) Read() (Record, error) {
	if p.isJSONL {
		for p.scanner.Scan() {
			line := bytes.TrimSpace(p.scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var record Record
			if err := json.Unmarshal(line, &record); err != nil {
				return nil, fmt.Errorf("failed to parse JSONL record: %w", err)
			}
			return record, nil
		}
		if err := p.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	if !p.startArrayChecked {
		p.startArrayChecked = true
		// Nothing has been decoded yet, so the decoder has not buffered
		// past the first byte.
		c, err := p.peekNonSpace()
		if err != nil {
			return nil, err
		}
		if c == '[' {
			if _, err := p.decoder.Token(); err != nil {
				return nil, fmt.Errorf("failed to decode JSON array: %w", err)
			}
			p.inArray = true
		}
	}

	if p.inArray && !p.decoder.More() {
		// Consume closing ']'
		t, err := p.decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}
		if delim, ok := t.(json.Delim); ok && delim == ']' {
			p.inArray = false
			p.done = true
			return nil, io.EOF
		}
		return nil, fmt.Errorf("expected array end, got %v", t)
	}
	if p.done {
		return nil, io.EOF
	}

	var record Record
	if err := p.decoder.Decode(&record); err != nil {
		if err == io.EOF && !p.inArray {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode JSON record: %w", err)
	}
	return record, nil
}

func (p *Parser) peekNonSpace() (byte, error) {
	for {
		b, err := p.bufReader.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\n', '\t', '\r':
			p.bufReader.ReadByte()
		default:
			return b[0], nil
		}
	}
}

// ReadAll reads all records from the file: the elements of a top-level
// array, a single object, concatenated objects or JSON Lines.
func (p *Parser) ReadAll() ([]Record, error) {
	var records []Record
	err := p.ForEachRecord(func(record Record) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ForEachRecord processes each record with the given function
func (p *Parser) ForEachRecord(fn func(Record) error) error {
	for {
		record, err := p.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := fn(record); err != nil {
			return err
		}
	}
}

// WriteJSON writes records as a JSON array
func WriteJSON(w io.Writer, records []Record, pretty bool) error {
	if records == nil {
		records = []Record{}
	}
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(records)
}

// WriteJSONL writes records as JSON Lines
func WriteJSONL(w io.Writer, records []Record, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
