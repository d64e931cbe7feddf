package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func decodeResult(t *testing.T, body []byte) Result {
	t.Helper()
	out := new(structpb.Struct)
	require.NoError(t, protobuf.Unmarshal(body, out))
	return resultFromStruct(out)
}

func TestHandleJob(t *testing.T) {
	in, err := threePageJob().toStruct()
	require.NoError(t, err)
	body, err := protobuf.Marshal(in)
	require.NoError(t, err)

	out, err := testNode().handleJob(body)
	require.NoError(t, err)

	expected, err := testNode().Compute(threePageJob())
	require.NoError(t, err)
	assert.Equal(t, expected, decodeResult(t, out))
}

func TestHandleJob_Failures(t *testing.T) {
	t.Run("undecodable", func(t *testing.T) {
		out, err := testNode().handleJob([]byte{0xff, 0xff, 0xff})
		require.NoError(t, err)

		result := decodeResult(t, out)
		assert.Contains(t, result.Error, "invalid job")
		assert.Nil(t, result.Sampling)
	})

	t.Run("empty corpus", func(t *testing.T) {
		in, err := Job{Id: "empty", Corpus: map[string][]string{}}.toStruct()
		require.NoError(t, err)
		body, err := protobuf.Marshal(in)
		require.NoError(t, err)

		out, err := testNode().handleJob(body)
		require.NoError(t, err)

		result := decodeResult(t, out)
		assert.Equal(t, "empty", result.Id)
		assert.Contains(t, result.Error, "corpus has no pages")
	})
}
