package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/healthedi/x12/schema"
)

const minimal270Interchange = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *210101*1253*^*00501*000000905*1*P*:~" +
	"GS*HS*SENDER*RECEIVER*20210101*1253*1*X*005010X279A1~" +
	"ST*270*0001*005010X279A1~" +
	"BHT*0022*13*10001234*20210101*1319~" +
	"HL*1**20*1~" +
	"NM1*PR*2*PAYER NAME*****PI*12345~" +
	"HL*2*1*21*1~" +
	"NM1*1P*1*PROVIDER*JOHN****XX*1234567893~" +
	"HL*3*2*22*0~" +
	"NM1*IL*1*DOE*JOHN****MI*123456789A~" +
	"DMG*D8*19800101*M~" +
	"DTP*291*D8*20210101~" +
	"EQ*30~" +
	"SE*12*0001~" +
	"GE*1*1~" +
	"IEA*1*000000905~"

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.x12")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCLIModelsDefault(t *testing.T) {
	path := writeFixture(t, minimal270Interchange)
	var buf bytes.Buffer

	err := runCLI(&buf, path, cliOptions{})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	txs, ok := payload["transactions"].([]any)
	require.True(t, ok)
	assert.Len(t, txs, 1)
}

func TestRunCLISegmentsMode(t *testing.T) {
	path := writeFixture(t, minimal270Interchange)
	var buf bytes.Buffer

	err := runCLI(&buf, path, cliOptions{rawSegments: true})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	segs, ok := payload["segments"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, segs)
}

func TestRunCLIRejectsConflictingModeFlags(t *testing.T) {
	path := writeFixture(t, minimal270Interchange)
	var buf bytes.Buffer

	err := runCLI(&buf, path, cliOptions{rawSegments: true, modelMode: true})
	assert.Error(t, err)
}

func TestRunCLIRejectsDelimitersWithSegmentsMode(t *testing.T) {
	path := writeFixture(t, minimal270Interchange)
	var buf bytes.Buffer

	err := runCLI(&buf, path, cliOptions{rawSegments: true, includeDelims: true})
	assert.Error(t, err)
}

func TestRunCLIMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runCLI(&buf, filepath.Join(t.TempDir(), "missing.x12"), cliOptions{})
	assert.Error(t, err)
}
