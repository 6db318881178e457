package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, uint32(logx.DebugLevel), parseLevel("debug"))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel("info"))
	require.Equal(t, uint32(logx.ErrorLevel), parseLevel("error"))
	require.Equal(t, uint32(logx.SevereLevel), parseLevel("fatal"))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel("unknown"))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel("  INFO  "))
}

func TestMsgWithFields(t *testing.T) {
	require.Equal(t, "plain", msgWithFields("plain", nil))

	out := msgWithFields("msg", Fields{"model": "gpt-4o"})
	require.Contains(t, out, "msg | ")
	require.Contains(t, out, "model=gpt-4o")
}
