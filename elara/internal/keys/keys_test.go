package keys

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitKeys(t *testing.T) {
	t.Parallel()

	fileName := t.TempDir() + "/keys.yaml"

	manager := NewSignerKeysManager(fileName)
	require.NoError(t, manager.InitKeys())

	key, err := manager.GetKey()
	require.NoError(t, err)
	require.False(t, key.IsZero())

	address, err := manager.GetAddress()
	require.NoError(t, err)

	// A second manager must load the very same key from the file.
	manager2 := NewSignerKeysManager(fileName)
	require.NoError(t, manager2.InitKeys())

	key2, err := manager2.GetKey()
	require.NoError(t, err)
	require.Equal(t, key, key2)

	address2, err := manager2.GetAddress()
	require.NoError(t, err)
	require.Equal(t, address, address2)
}

func TestInitKeys_Twice(t *testing.T) {
	t.Parallel()

	manager := NewSignerKeysManager(t.TempDir() + "/keys.yaml")
	require.NoError(t, manager.InitKeys())
	require.Error(t, manager.InitKeys())
}

func TestGetKey_NotInitialized(t *testing.T) {
	t.Parallel()

	manager := NewSignerKeysManager(t.TempDir() + "/keys.yaml")

	_, err := manager.GetKey()
	require.ErrorIs(t, err, errKeysNotInitialized)

	_, err = manager.GetAddress()
	require.ErrorIs(t, err, errKeysNotInitialized)
}

func TestInitKeys_CorruptedFile(t *testing.T) {
	t.Parallel()

	fileName := t.TempDir() + "/keys.yaml"
	require.NoError(t, os.WriteFile(fileName, []byte("privateKey: \"0x00\"\n"), 0o600))

	manager := NewSignerKeysManager(fileName)
	require.Error(t, manager.InitKeys())
}

func TestInitKeys_AddressMismatch(t *testing.T) {
	t.Parallel()

	fileName := t.TempDir() + "/keys.yaml"

	manager := NewSignerKeysManager(fileName)
	require.NoError(t, manager.InitKeys())

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)

	// Flip the stored address so that it no longer matches the key.
	corrupted := []byte(string(data))
	for i := len(corrupted) - 3; i > 0; i-- {
		if corrupted[i] == 'a' {
			corrupted[i] = 'b'
			break
		} else if corrupted[i] == 'b' {
			corrupted[i] = 'a'
			break
		} else if corrupted[i] >= '0' && corrupted[i] <= '8' {
			corrupted[i]++
			break
		}
	}
	require.NoError(t, os.WriteFile(fileName, corrupted, 0o600))

	manager2 := NewSignerKeysManager(fileName)
	require.Error(t, manager2.InitKeys())
}
