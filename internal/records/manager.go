package records

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/domain"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/controller/record"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
	"github.com/GoPowerDNS-Admin/record-engine/internal/uniuri"
	"github.com/GoPowerDNS-Admin/record-engine/internal/validation"
)

const fallbackTTL = 3600

// Rectifier triggers DNSSEC rectification of a zone on the authoritative
// server.
type Rectifier interface {
	RectifyZone(ctx context.Context, zone string) error
}

// Options tune the manager.
type Options struct {
	DefaultTTL    int  // substituted when a request omits the TTL
	DnssecEnabled bool // rectify zones after successful mutations
}

// Manager orchestrates record mutations. A mutation reports success when
// its row was persisted; the audit, rectify and comment sync tail is best
// effort.
type Manager struct {
	db       *gorm.DB
	registry *validation.Registry
	sync     *CommentSync
	rectify  Rectifier
	opts     Options

	check *validator.Validate
}

// NewManager wires a manager from its collaborators. rectify may be nil
// when no authoritative server is reachable.
func NewManager(db *gorm.DB, registry *validation.Registry, sync *CommentSync, rectify Rectifier, opts Options) *Manager {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = fallbackTTL
	}

	return &Manager{
		db:       db,
		registry: registry,
		sync:     sync,
		rectify:  rectify,
		opts:     opts,
		check:    validator.New(),
	}
}

// CreateInput describes a record creation request. Name is relative to the
// zone, empty or "@" for the apex.
type CreateInput struct {
	ZoneID     uint64 `validate:"required"`
	Name       string
	Type       string `validate:"required"`
	Content    string `validate:"required"`
	TTL        string
	Prio       string
	Comment    string
	Account    string
	ClientAddr string
}

// UpdateInput describes a record edit. Name, Type and Content replace the
// stored values after validation.
type UpdateInput struct {
	RecordID   uint64 `validate:"required"`
	Name       string
	Type       string `validate:"required"`
	Content    string `validate:"required"`
	TTL        string
	Prio       string
	Comment    string
	Account    string
	ClientAddr string
}

// DeleteInput describes a record removal.
type DeleteInput struct {
	RecordID   uint64 `validate:"required"`
	Account    string
	ClientAddr string
}

// CreateRecord validates and persists a new record. It reports whether the
// record was written.
func (m *Manager) CreateRecord(ctx context.Context, in CreateInput) bool {
	ok := m.createRecord(ctx, uniuri.New(), in)
	countMutation("create", ok)

	return ok
}

func (m *Manager) createRecord(ctx context.Context, opID string, in CreateInput) bool {
	if err := m.check.Struct(in); err != nil {
		log.Warn().Str("operation_id", opID).Err(err).Msg("create request rejected")

		return false
	}

	zone, err := domain.Get(m.db, in.ZoneID)
	if err != nil {
		log.Warn().Str("operation_id", opID).Uint64("zone_id", in.ZoneID).Err(err).Msg("create request for unknown zone")

		return false
	}

	if zone.ReadOnly() {
		log.Warn().Str("operation_id", opID).Str("zone", zone.Name).Msg("zone is read only")

		return false
	}

	name := dnsname.RestoreZoneSuffix(in.Name, zone.Name)

	res, err := m.registry.Validate(in.Type, in.Content, name, in.Prio, in.TTL, m.opts.DefaultTTL)
	if err != nil {
		log.Warn().Str("operation_id", opID).Str("type", in.Type).Err(err).Msg("create request rejected")

		return false
	}

	if !res.IsValid() {
		log.Warn().Str("operation_id", opID).Str("name", name).Strs("problems", res.Errors).Msg("record data rejected")

		return false
	}

	rec := &models.Record{
		DomainID: in.ZoneID,
		Name:     strings.ToLower(res.Data.Name),
		Type:     strings.ToUpper(strings.TrimSpace(in.Type)),
		Content:  res.Data.Content,
		TTL:      res.Data.TTL,
		Prio:     res.Data.Prio,
		Auth:     true,
	}

	if err = record.Create(m.db, rec); err != nil {
		log.Error().Str("operation_id", opID).Str("name", rec.Name).Err(err).Msg("failed to persist record")

		return false
	}

	m.audit(opID, "create", zone.Name, rec, in.Account, in.ClientAddr)
	m.rectifyZone(ctx, opID, zone.Name)

	if in.Comment != "" {
		if err = m.sync.SyncOnCreate(in.ZoneID, rec.Name, rec.Type, rec.Content, in.Comment, in.Account); err != nil {
			log.Warn().Str("operation_id", opID).Err(err).Msg("comment sync failed")
		}
	}

	return true
}

// UpdateRecord validates replacement data and rewrites an existing record.
// It reports whether the row was updated.
func (m *Manager) UpdateRecord(ctx context.Context, in UpdateInput) bool {
	ok := m.updateRecord(ctx, uniuri.New(), in)
	countMutation("update", ok)

	return ok
}

func (m *Manager) updateRecord(ctx context.Context, opID string, in UpdateInput) bool {
	if err := m.check.Struct(in); err != nil {
		log.Warn().Str("operation_id", opID).Err(err).Msg("update request rejected")

		return false
	}

	rec, err := record.Get(m.db, in.RecordID)
	if err != nil {
		log.Warn().Str("operation_id", opID).Uint64("record_id", in.RecordID).Err(err).Msg("update request for unknown record")

		return false
	}

	zone, err := domain.Get(m.db, rec.DomainID)
	if err != nil {
		log.Warn().Str("operation_id", opID).Uint64("zone_id", rec.DomainID).Err(err).Msg("record has no zone")

		return false
	}

	if zone.ReadOnly() {
		log.Warn().Str("operation_id", opID).Str("zone", zone.Name).Msg("zone is read only")

		return false
	}

	name := dnsname.RestoreZoneSuffix(in.Name, zone.Name)

	res, err := m.registry.Validate(in.Type, in.Content, name, in.Prio, in.TTL, m.opts.DefaultTTL)
	if err != nil {
		log.Warn().Str("operation_id", opID).Str("type", in.Type).Err(err).Msg("update request rejected")

		return false
	}

	if !res.IsValid() {
		log.Warn().Str("operation_id", opID).Str("name", name).Strs("problems", res.Errors).Msg("record data rejected")

		return false
	}

	oldName := rec.Name
	oldContent := rec.Content

	rec.Name = strings.ToLower(res.Data.Name)
	rec.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	rec.Content = res.Data.Content
	rec.TTL = res.Data.TTL
	rec.Prio = res.Data.Prio

	if err = record.Update(m.db, rec); err != nil {
		log.Error().Str("operation_id", opID).Str("name", rec.Name).Err(err).Msg("failed to persist record")

		return false
	}

	m.audit(opID, "update", zone.Name, rec, in.Account, in.ClientAddr)
	m.rectifyZone(ctx, opID, zone.Name)

	if err = m.sync.SyncOnUpdate(rec.DomainID, oldName, oldContent, rec.Name, rec.Type, rec.Content, in.Comment, in.Account); err != nil {
		log.Warn().Str("operation_id", opID).Err(err).Msg("comment sync failed")
	}

	return true
}

// DeleteRecord removes a record and its comments. It reports whether the
// row was deleted.
func (m *Manager) DeleteRecord(ctx context.Context, in DeleteInput) bool {
	ok := m.deleteRecord(ctx, uniuri.New(), in)
	countMutation("delete", ok)

	return ok
}

func (m *Manager) deleteRecord(ctx context.Context, opID string, in DeleteInput) bool {
	if err := m.check.Struct(in); err != nil {
		log.Warn().Str("operation_id", opID).Err(err).Msg("delete request rejected")

		return false
	}

	rec, err := record.Get(m.db, in.RecordID)
	if err != nil {
		log.Warn().Str("operation_id", opID).Uint64("record_id", in.RecordID).Err(err).Msg("delete request for unknown record")

		return false
	}

	zone, err := domain.Get(m.db, rec.DomainID)
	if err != nil {
		log.Warn().Str("operation_id", opID).Uint64("zone_id", rec.DomainID).Err(err).Msg("record has no zone")

		return false
	}

	if zone.ReadOnly() {
		log.Warn().Str("operation_id", opID).Str("zone", zone.Name).Msg("zone is read only")

		return false
	}

	if err = record.Delete(m.db, rec.ID); err != nil {
		log.Error().Str("operation_id", opID).Str("name", rec.Name).Err(err).Msg("failed to delete record")

		return false
	}

	m.audit(opID, "delete", zone.Name, rec, in.Account, in.ClientAddr)
	m.rectifyZone(ctx, opID, zone.Name)

	if err = m.sync.SyncOnDelete(rec.DomainID, rec.Name, rec.Type, rec.Content); err != nil {
		log.Warn().Str("operation_id", opID).Err(err).Msg("comment cleanup failed")
	}

	return true
}

func (m *Manager) audit(opID, operation, zone string, rec *models.Record, account, clientAddr string) {
	log.Info().
		Bool("audit", true).
		Str("operation_id", opID).
		Str("operation", operation).
		Str("zone", zone).
		Str("name", rec.Name).
		Str("type", rec.Type).
		Str("content", rec.Content).
		Int("ttl", rec.TTL).
		Int("prio", rec.Prio).
		Str("account", account).
		Str("client_addr", clientAddr).
		Msg("record mutation")
}

func (m *Manager) rectifyZone(ctx context.Context, opID, zone string) {
	if !m.opts.DnssecEnabled || m.rectify == nil {
		return
	}

	if err := m.rectify.RectifyZone(ctx, zone); err != nil {
		log.Warn().Str("operation_id", opID).Str("zone", zone).Err(err).Msg("zone rectify failed")
	}
}
