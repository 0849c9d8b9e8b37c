package records

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/comment"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/domain"
	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

// CommentSync writes record comments and keeps the comments of A/AAAA
// records and their PTR counterparts in step. With sync disabled only the
// directly edited record gets a comment.
type CommentSync struct {
	db      *gorm.DB
	enabled bool
}

// NewCommentSync returns a CommentSync writing through db.
func NewCommentSync(db *gorm.DB, enabled bool) *CommentSync {
	return &CommentSync{db: db, enabled: enabled}
}

// SyncOnCreate writes the comment of a newly created record and, for
// address and PTR records, the comment of the paired record. A missing
// counterpart zone degrades to the single-sided write, never an error.
func (s *CommentSync) SyncOnCreate(zoneID uint64, name, recordType, content, text, account string) error {
	if err := comment.Set(s.db, zoneID, name, recordType, text, account); err != nil {
		return err
	}

	if !s.enabled {
		return nil
	}

	switch strings.ToUpper(recordType) {
	case "A", "AAAA":
		revZoneID, ptrName, ok, err := s.reverseTuple(content)
		if err != nil || !ok {
			return err
		}

		return comment.Set(s.db, revZoneID, ptrName, "PTR", text, account)

	case "PTR":
		fwdZoneID, target, ok, err := s.forwardTuple(content)
		if err != nil || !ok {
			return err
		}

		return comment.Set(s.db, fwdZoneID, target, "A", text, account)

	default:
		return nil
	}
}

// SyncOnUpdate rewrites the comments touched by a record edit. The edited
// record's comment is renamed and rewritten keyed by its old name, and for
// address and PTR records the counterpart comment follows along the same
// way, so renaming an A record also renames its PTR-side comment. Empty
// text clears existing rows but never mints new ones. When the edit moves
// the paired name into a different zone, the row left behind in the old
// zone is removed.
func (s *CommentSync) SyncOnUpdate(zoneID uint64, oldName, oldContent, newName, recordType, newContent, text, account string) error {
	if err := s.rename(zoneID, oldName, newName, recordType, text, account); err != nil {
		return err
	}

	if !s.enabled {
		return nil
	}

	switch strings.ToUpper(recordType) {
	case "A", "AAAA":
		revZoneID, newPtr, ok, err := s.reverseTuple(newContent)
		if err != nil || !ok {
			return err
		}

		oldRevID, oldPtr, oldOK, err := s.reverseTuple(oldContent)
		if err != nil {
			return err
		}

		// A move into a different reverse zone strands the old row there,
		// the rename below only reaches rows inside the new zone.
		if oldOK && oldRevID != revZoneID {
			if err = comment.Delete(s.db, oldRevID, oldPtr, "PTR"); err != nil {
				return err
			}
		}

		if !oldOK || oldRevID != revZoneID {
			oldPtr = newPtr
		}

		return s.rename(revZoneID, oldPtr, newPtr, "PTR", text, account)

	case "PTR":
		fwdZoneID, newTarget, ok, err := s.forwardTuple(newContent)
		if err != nil || !ok {
			return err
		}

		oldFwdID, oldTarget, oldOK, err := s.forwardTuple(oldContent)
		if err != nil {
			return err
		}

		if oldOK && oldFwdID != fwdZoneID {
			if err = comment.Delete(s.db, oldFwdID, oldTarget, "A"); err != nil {
				return err
			}
		}

		if !oldOK || oldFwdID != fwdZoneID {
			oldTarget = newTarget
		}

		return s.rename(fwdZoneID, oldTarget, newTarget, "A", text, account)

	default:
		return nil
	}
}

// rename rewrites the comment on (zoneID, oldName, recordType) to newName.
// A missing row is created only when there is text to store, so edits on
// uncommented records leave the comments table alone.
func (s *CommentSync) rename(zoneID uint64, oldName, newName, recordType, text, account string) error {
	if text == "" {
		if _, err := comment.Get(s.db, zoneID, oldName, recordType); err != nil {
			if errors.Is(err, comment.ErrCommentNotFound) {
				return nil
			}

			return err
		}
	}

	return comment.Rename(s.db, zoneID, oldName, newName, recordType, text, account)
}

// SyncOnDelete removes the comment of a deleted record and, when sync is
// enabled, the comment of the paired record.
func (s *CommentSync) SyncOnDelete(zoneID uint64, name, recordType, content string) error {
	if err := comment.Delete(s.db, zoneID, name, recordType); err != nil {
		return err
	}

	if !s.enabled {
		return nil
	}

	switch strings.ToUpper(recordType) {
	case "A", "AAAA":
		revZoneID, ptrName, ok, err := s.reverseTuple(content)
		if err != nil || !ok {
			return err
		}

		return comment.Delete(s.db, revZoneID, ptrName, "PTR")

	case "PTR":
		fwdZoneID, target, ok, err := s.forwardTuple(content)
		if err != nil || !ok {
			return err
		}

		return comment.Delete(s.db, fwdZoneID, target, "A")

	default:
		return nil
	}
}

// reverseTuple resolves the reverse zone and PTR name paired with an
// address record's content. ok is false when the address has no owning
// reverse zone.
func (s *CommentSync) reverseTuple(content string) (zoneID uint64, ptrName string, ok bool, err error) {
	ptrName, rerr := dnsname.ReverseName(content)
	if rerr != nil {
		return 0, "", false, nil
	}

	revZone, lerr := domain.BestMatch(s.db, ptrName)
	if lerr != nil {
		if errors.Is(lerr, domain.ErrDomainNotFound) {
			return 0, "", false, nil
		}

		return 0, "", false, lerr
	}

	return revZone.ID, ptrName, true, nil
}

// forwardTuple resolves the forward zone and record name paired with a PTR
// record's target. ok is false when no zone owns the registered domain of
// the target.
func (s *CommentSync) forwardTuple(content string) (zoneID uint64, name string, ok bool, err error) {
	registered, rerr := dnsname.RegisteredDomain(content)
	if rerr != nil {
		return 0, "", false, nil
	}

	fwdZone, lerr := domain.GetByName(s.db, registered)
	if lerr != nil {
		if errors.Is(lerr, domain.ErrDomainNotFound) {
			return 0, "", false, nil
		}

		return 0, "", false, lerr
	}

	return fwdZone.ID, strings.ToLower(dnsname.Trimmed(content)), true, nil
}
