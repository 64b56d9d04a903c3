package keys

import (
	"errors"
	"fmt"
	"os"

	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/elaranetwork/elara/elara/common/logging"
	"github.com/elaranetwork/elara/elara/internal/types"
	"gopkg.in/yaml.v3"
)

var Logger = logging.NewLogger("keys")

var errKeysNotInitialized = errors.New("keys are not initialized")

type dumpedSignerKey struct {
	PrivateKey hexutil.Bytes `yaml:"privateKey"`
	Address    hexutil.Bytes `yaml:"address"`
}

// SignerKeysManager owns the transaction-signing key of a node. The key lives
// in a YAML file next to the derived address; on startup it is either loaded
// from that file or freshly generated and written out.
type SignerKeysManager struct {
	keysPath string
	key      types.PrivateKey
	address  types.Address
	init     bool
}

func NewSignerKeysManager(keysPath string) *SignerKeysManager {
	return &SignerKeysManager{keysPath: keysPath}
}

const filePermissions = 0o600

func (m *SignerKeysManager) generateKey() error {
	key, err := types.GeneratePrivateKey()
	if err != nil {
		return err
	}
	address, err := key.PublicKeyAddress()
	if err != nil {
		return err
	}
	m.key = key
	m.address = address
	Logger.Info().Str(logging.FieldAddress, m.address.Hex()).Msg("Generated new signer key")
	return nil
}

func (m *SignerKeysManager) dumpKey() error {
	data, err := yaml.Marshal(dumpedSignerKey{
		PrivateKey: m.key.Bytes(),
		Address:    m.address.Bytes(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(m.keysPath, data, filePermissions)
}

func (m *SignerKeysManager) loadKey() error {
	Logger.Info().Str(logging.FieldPath, m.keysPath).Msg("Loading signer key")
	data, err := os.ReadFile(m.keysPath)
	if err != nil {
		return err
	}

	dumped := &dumpedSignerKey{}
	if err := yaml.Unmarshal(data, dumped); err != nil {
		return err
	}

	key, err := types.PrivateKeyFromBytes(dumped.PrivateKey)
	if err != nil {
		return err
	}
	address, err := key.PublicKeyAddress()
	if err != nil {
		return err
	}
	if address != types.BytesToAddress(dumped.Address) {
		return errors.New("address mismatch")
	}
	m.key = key
	m.address = address
	return nil
}

// InitKeys loads the key from the file if it exists, or generates a new key
// and saves it to the file.
func (m *SignerKeysManager) InitKeys() error {
	if m.init {
		return errors.New("keys are already initialized")
	}
	if _, err := os.Stat(m.keysPath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error checking key file: %w", err)
		}
		Logger.Warn().Str(logging.FieldPath, m.keysPath).Msg("Keys file not found, generating a new key")
		if err := m.generateKey(); err != nil {
			return fmt.Errorf("error generating key: %w", err)
		}
		if err := m.dumpKey(); err != nil {
			return fmt.Errorf("error saving key: %w", err)
		}
		m.init = true
		return nil
	}
	if err := m.loadKey(); err != nil {
		return fmt.Errorf("error loading key: %w", err)
	}
	m.init = true
	return nil
}

func (m *SignerKeysManager) GetKey() (types.PrivateKey, error) {
	if !m.init {
		return types.EmptyPrivateKey, errKeysNotInitialized
	}
	return m.key, nil
}

func (m *SignerKeysManager) GetAddress() (types.Address, error) {
	if !m.init {
		return types.EmptyAddress, errKeysNotInitialized
	}
	return m.address, nil
}

func (m *SignerKeysManager) GetKeysPath() string {
	return m.keysPath
}
