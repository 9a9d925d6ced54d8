package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listItem struct {
	Account string
	Token   string
}

func TestPlainPrintList(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters("plain", &out, &errOut)

	items := []listItem{{Account: "a", Token: "1"}, {Account: "b", Token: "2"}}
	cols := []Column{{Name: "Account", Key: "Account"}, {Name: "Token", Key: "Token"}}

	require.NoError(t, f.PrintList(items, cols))
	assert.Equal(t, "Account\tToken\na\t1\nb\t2\n", out.String())
}

func TestPlainPrintListMaps(t *testing.T) {
	var out bytes.Buffer
	f := NewWithWriters("plain", &out, &bytes.Buffer{})

	items := []map[string]string{{"Key": "service_name", "Value": "Popviewers"}}
	cols := []Column{{Name: "Key", Key: "Key"}, {Name: "Value", Key: "Value"}}

	require.NoError(t, f.PrintList(items, cols))
	assert.Equal(t, "Key\tValue\nservice_name\tPopviewers\n", out.String())
}

func TestPrintListRequiresSlice(t *testing.T) {
	f := NewWithWriters("plain", &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, f.PrintList(listItem{}, nil))
}

func TestJSONPrintListEnvelope(t *testing.T) {
	var out bytes.Buffer
	f := NewWithWriters("json", &out, &bytes.Buffer{})

	items := []listItem{{Account: "a", Token: "1"}}
	require.NoError(t, f.PrintList(items, nil))
	assert.JSONEq(t, `{"count": 1, "data": [{"Account": "a", "Token": "1"}]}`, out.String())
}

func TestPlainPrintStruct(t *testing.T) {
	var out bytes.Buffer
	f := NewWithWriters("plain", &out, &bytes.Buffer{})

	require.NoError(t, f.Print(&listItem{Account: "a", Token: "1"}))
	assert.Equal(t, "Account\ta\nToken\t1\n", out.String())
}

func TestUnknownModeFallsBackToPlain(t *testing.T) {
	f := NewWithWriters("yaml", &bytes.Buffer{}, &bytes.Buffer{})
	_, ok := f.(*plainFormatter)
	assert.True(t, ok)
}
