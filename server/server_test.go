package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthedi/x12/engine"
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

func newTestServer() *Server {
	return New(engine.New())
}

func postX12(t *testing.T, srv *Server, body []byte, mode string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/x12", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if mode != "" {
		req.Header.Set(outputModeHeader, mode)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleX12ModelsDefault(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(x12Request{X12: minimal270Interchange})
	require.NoError(t, err)

	rec := postX12(t, srv, body, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	txs, ok := payload["transactions"].([]any)
	require.True(t, ok)
	assert.Len(t, txs, 1)
}

func TestHandleX12SegmentsMode(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(x12Request{X12: minimal270Interchange})
	require.NoError(t, err)

	rec := postX12(t, srv, body, "segments")
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	segs, ok := payload["segments"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, segs)
}

func TestHandleX12MalformedBody(t *testing.T) {
	srv := newTestServer()
	rec := postX12(t, srv, []byte("not json"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleX12MissingField(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(x12Request{})
	require.NoError(t, err)

	rec := postX12(t, srv, body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleX12InvalidDocument(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(x12Request{X12: "not an x12 document"})
	require.NoError(t, err)

	rec := postX12(t, srv, body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleX12UnknownMode(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(x12Request{X12: minimal270Interchange})
	require.NoError(t, err)

	rec := postX12(t, srv, body, "bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
