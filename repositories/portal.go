//go:generate go run go.uber.org/mock/mockgen -source=portal.go -destination=../mocks/mock_portal_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"portal-messaging/domain"

	"github.com/dgraph-io/badger/v4"
)

// The store holds exactly four string-keyed slots, mirroring the
// portal's four persisted records. Each slot holds one JSON value;
// writes are last-writer-wins with no versioning.
const (
	keyAccounts = "portal:accounts"
	keyMessages = "portal:messages"
	keyReports  = "portal:reports"
	keySession  = "portal:session"
)

type IPortalRepository interface {
	SaveState(state State) error
	LoadState() (State, error)
}

// StoredSession is the disk form of the live session: the session
// fields plus the signed stamp the service wrote next to them.
type StoredSession struct {
	domain.Session
	Stamp string `json:"stamp"`
}

// State is the full persisted state of the portal. Session is nil when
// nobody is logged in.
type State struct {
	Accounts []domain.Account
	Messages []domain.Message
	Reports  []domain.Report
	Session  *StoredSession
}

type PortalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPortalRepository(db *badger.DB, log *slog.Logger) IPortalRepository {
	return &PortalRepository{db: db, log: log}
}

// SaveState flushes all four slots together. There is no partial-flush
// recovery: if the write fails, in-memory state and persisted state
// diverge until the next successful flush.
func (r *PortalRepository) SaveState(state State) error {
	accounts, err := json.Marshal(state.Accounts)
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}
	messages, err := json.Marshal(state.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}
	reports, err := json.Marshal(state.Reports)
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyAccounts), accounts); err != nil {
			return err
		}
		if err := txn.Set([]byte(keyMessages), messages); err != nil {
			return err
		}
		if err := txn.Set([]byte(keyReports), reports); err != nil {
			return err
		}
		if state.Session == nil {
			err := txn.Delete([]byte(keySession))
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		session, err := json.Marshal(state.Session)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		return txn.Set([]byte(keySession), session)
	})
}

// LoadState restores the four slots. Absent slots fall back to their
// defaults: the seeded account directory, empty logs, no session.
func (r *PortalRepository) LoadState() (State, error) {
	state := State{}
	err := r.db.View(func(txn *badger.Txn) error {
		if err := readSlot(txn, keyAccounts, &state.Accounts); err != nil {
			return err
		}
		if err := readSlot(txn, keyMessages, &state.Messages); err != nil {
			return err
		}
		if err := readSlot(txn, keyReports, &state.Reports); err != nil {
			return err
		}
		return readSlot(txn, keySession, &state.Session)
	})
	if err != nil {
		return State{}, err
	}

	if state.Accounts == nil {
		r.log.Info("No account slot found, seeding default directory")
		state.Accounts = domain.DefaultAccounts()
	}
	return state, nil
}

// readSlot unmarshals one slot into out, leaving it untouched when the
// key is absent.
func readSlot(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
