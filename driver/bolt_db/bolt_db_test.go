package bolt_db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"techpulse/test_utils/contract"
)

func TestBoltDB_Contract(t *testing.T) {
	contract.RunStoreContract(t, func(t *testing.T) contract.Store {
		db, err := Open(filepath.Join(t.TempDir(), "techpulse.bolt"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return db
	})
}
