package keyring

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmit-co/xkey/slip21"
)

const seedHex = "c76c4ac4f4e4a00d6b274d5c39c700bb4a7ddc04fbc6f78e85ca75007b5b495f74a9043eeb77bdd53aa6fc3a0e31462270316fa04b8c19114c8798706cd02ac8"

func master(t *testing.T) slip21.Node {
	t.Helper()
	seed, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	return slip21.NewMaster(seed)
}

func TestBuild(t *testing.T) {
	m := master(t)
	paths := []string{
		"m/SLIP-0021/Master encryption key",
		"m/SLIP-0021",
		"m",
		"m/app/a",
		"m/app/b",
	}
	for _, parallelism := range []int{0, 1, 3, 16} {
		k, err := Build(m, paths, parallelism)
		require.NoError(t, err)
		require.Len(t, k.Entries, len(paths))
		assert.Equal(t, m.Fingerprint(), k.Master)

		assert.Equal(t, "m", k.Entries[0].Path)
		for i := 1; i < len(k.Entries); i++ {
			assert.Less(t, k.Entries[i-1].Path, k.Entries[i].Path)
		}

		n, ok := k.Lookup("m/SLIP-0021/Master encryption key")
		require.True(t, ok)
		assert.Equal(t, "ea163130e35bbafdf5ddee97a17b39cef2be4b4f390180d65b54cf05c6a82fde", hex.EncodeToString(n.Key()))

		n, ok = k.Lookup("m")
		require.True(t, ok)
		assert.Equal(t, m, n)

		_, ok = k.Lookup("m/missing")
		assert.False(t, ok)
	}
}

func TestBuildErrors(t *testing.T) {
	m := master(t)

	_, err := Build(m, []string{"m/a", "m/a"}, 2)
	assert.ErrorContains(t, err, "duplicate")

	_, err = Build(m, []string{"m/a", "x/b", "m//c"}, 2)
	var pe *slip21.PathError
	assert.ErrorAs(t, err, &pe)

	k, err := Build(m, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, k.Entries)
}

func TestEncodeDecode(t *testing.T) {
	k, err := Build(master(t), []string{"m/SLIP-0021", "m/b", "m/a"}, 2)
	require.NoError(t, err)

	for _, mode := range []slip21.Mode{slip21.Text, slip21.Binary} {
		t.Run(mode.String(), func(t *testing.T) {
			b, err := k.Encode(mode)
			require.NoError(t, err)
			got, err := Decode(b, mode)
			require.NoError(t, err)
			assert.Equal(t, k, got)
		})
	}
}

func TestDecodeText(t *testing.T) {
	k, err := Build(master(t), []string{"m/SLIP-0021"}, 1)
	require.NoError(t, err)
	b, err := k.Encode(slip21.Text)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"node": "446aded06078cf950dab737f014c7bae81eeb6e7beecc260a38e2e0fa99731041d065e3ac1bbe5c7fad32cf2305f7d709dc070d672044a19e610c77cdf33de0d"`)
	assert.Contains(t, string(b), `"master": "`+k.Master.String()+`"`)

	_, err = Decode([]byte(`{"entries":[{"path":"m/a","node":"00"}]}`), slip21.Text)
	var le *slip21.LengthError
	assert.ErrorAs(t, err, &le)
}

func TestDecodeBinaryGarbage(t *testing.T) {
	_, err := Decode([]byte("not zstd"), slip21.Binary)
	assert.Error(t, err)
	_, err = Decode(nil, slip21.Mode(9))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := Build(master(t), []string{"m/a", "m/b"}, 2)
	require.NoError(t, err)
	b, err := Build(master(t), []string{"m/b", "m/a"}, 1)
	require.NoError(t, err)
	c, err := Build(master(t), []string{"m/a"}, 1)
	require.NoError(t, err)

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	fc, err := c.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}
