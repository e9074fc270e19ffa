package sheet

import (
	"reflect"
	"strings"
	"testing"
)

func TestWriteTSV(t *testing.T) {
	expected := "isUsed\tkey\ten\tko\n" +
		"O\thello\tHi\t안녕\n" +
		"X\tbye\tBye\t\n"

	var f strings.Builder
	var table = Table{
		Header: []string{"isUsed", "key", "en", "ko"},
		Rows: []Row{
			Row{"isUsed": "O", "key": "hello", "en": "Hi", "ko": "안녕"},
			Row{"isUsed": "X", "key": "bye", "en": "Bye"},
		},
	}

	if err := WriteTSV(&f, &table); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteTSVWithoutHeader(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, &Table{}); err == nil {
		t.Fatalf("Expected error return for missing header, got %v", err)
	}
}

func TestTSVRoundTrip(t *testing.T) {
	table := Table{
		Header: []string{"isUsed", "key", "en"},
		Rows: []Row{
			Row{"isUsed": "O", "key": "multiline", "en": "line 1\nline 2"},
			Row{"isUsed": "O", "key": "quoted", "en": `say "hi"`},
			Row{"isUsed": "X", "key": "tabbed", "en": "a\tb"},
		},
	}

	var f strings.Builder
	if err := WriteTSV(&f, &table); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	decoded, err := ReadTSV(strings.NewReader(f.String()))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if !reflect.DeepEqual(*decoded, table) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", table, *decoded)
	}
}

func TestReadTSVWithEmptyFile(t *testing.T) {
	if _, err := ReadTSV(strings.NewReader("")); err == nil {
		t.Fatalf("Expected error return for empty TSV file, got %v", err)
	}
}
