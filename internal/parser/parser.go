// Package parser decodes JSON text into the ordered value tree consumed by
// the inference engine. It streams tokens rather than unmarshalling into
// maps: object member order is part of this tool's output contract and a
// map-based decode would lose it.
package parser

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"shapegen/internal/errors"
	"shapegen/internal/models"
)

// Parse reads a single JSON document from reader and converts it into a
// models.Value tree.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to read input", err)
	}
	return parseBytes(data)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return parseBytes([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (models.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep the integer/float distinction intact

	root, err := decodeValue(dec)
	if err != nil {
		return models.Value{}, wrapDecodeError(err, data)
	}

	// Exactly one document per input: anything after the first value besides
	// trailing whitespace is rejected.
	if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
		if err == nil {
			return models.Value{}, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrMultipleJSON)
		}
		return models.Value{}, wrapDecodeError(err, data)
	}

	return root, nil
}

// decodeValue consumes the next complete JSON value from the token stream.
func decodeValue(dec *json.Decoder) (models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return models.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case nil:
		return models.Value{Kind: models.Null}, nil
	case bool:
		return models.Value{Kind: models.Bool, Bool: t}, nil
	case string:
		return models.Value{Kind: models.String, Str: t}, nil
	case json.Number:
		return numberValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return models.Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

func decodeArray(dec *json.Decoder) (models.Value, error) {
	arr := models.Value{Kind: models.Array}
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}
		arr.Items = append(arr.Items, elem)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return arr, nil
}

func decodeObject(dec *json.Decoder) (models.Value, error) {
	obj := models.Value{Kind: models.Object}
	var seen map[string]int
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.Value{}, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}

		// Duplicate keys keep the first occurrence's position and the last
		// occurrence's value.
		if seen == nil {
			seen = make(map[string]int)
		}
		if i, dup := seen[key]; dup {
			obj.Members[i].Value = val
			continue
		}
		seen[key] = len(obj.Members)
		obj.Members = append(obj.Members, models.Member{Key: key, Value: val})
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return obj, nil
}

// numberValue classifies a JSON number, trying the integer reading first and
// falling back to float64.
func numberValue(num json.Number) models.Value {
	if i, err := num.Int64(); err == nil {
		return models.Value{Kind: models.Integer, Int: i}
	}
	f, err := num.Float64()
	if err != nil {
		// The decoder only emits syntactically valid numbers; an overflowing
		// literal still parses as a float.
		return models.Value{Kind: models.Float}
	}
	return models.Value{Kind: models.Float, Float: f}
}

// wrapDecodeError attaches location diagnostics to decoder failures.
func wrapDecodeError(err error, data []byte) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		line, col := lineCol(data, syntaxErr.Offset)
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at line %d, column %d", line, col),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError(fmt.Sprintf("failed to decode JSON: %v", err), errors.ErrInvalidJSON)
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
