package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"iptrack/internal/domain"
	"iptrack/internal/sqlinline"
)

func strPtr(s string) *string { return &s }

func domainRow(id, full string, renewal *time.Time) []any {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return []any{
		id, "example", "do", full,
		strPtr("v-1"), strPtr("Pets"),
		nil, nil,
		nil, nil,
		nil, "active", "high", strPtr("NIC.do"),
		nil, renewal, decimal.NewNullDecimal(decimal.RequireFromString("25.50")),
		nil, nil, true,
		nil, nil, false, false,
		nil, nil, nil,
		now, now,
	}
}

func TestDomainRepositoryListPassesFilter(t *testing.T) {
	db := &stubSQL{}
	repo := NewDomainRepository(db)

	filter := domain.DomainFilter{Search: "pets", Status: "active", Limit: 50, Offset: 100}
	items, err := repo.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}

	got := db.last()
	if got.query != sqlinline.QListDomains {
		t.Fatalf("unexpected query issued")
	}
	want := []any{"pets", "", "", "active", 50, 100}
	if len(got.args) != len(want) {
		t.Fatalf("args = %#v, want %#v", got.args, want)
	}
	for i := range want {
		if got.args[i] != want[i] {
			t.Fatalf("arg %d = %#v, want %#v", i, got.args[i], want[i])
		}
	}
}

func TestDomainRepositoryGetScansEveryColumn(t *testing.T) {
	renewal := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	db := &stubSQL{row: domainRow("d-1", "example.do", &renewal)}
	repo := NewDomainRepository(db)

	d, err := repo.Get(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if d.DomainFull != "example.do" || d.VerticalName == nil || *d.VerticalName != "Pets" {
		t.Fatalf("unexpected domain: %+v", d)
	}
	if d.RenewalDate == nil || !d.RenewalDate.Equal(renewal) {
		t.Fatalf("renewal date not scanned: %v", d.RenewalDate)
	}
	if !d.AnnualCostUSD.Valid || d.AnnualCostUSD.Decimal.String() != "25.5" {
		t.Fatalf("cost not scanned: %+v", d.AnnualCostUSD)
	}
	if !d.CFEmailRouting || d.CountryID != nil {
		t.Fatalf("unexpected flags: %+v", d)
	}
}

func TestDomainRepositoryGetNotFound(t *testing.T) {
	repo := NewDomainRepository(&stubSQL{})

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDomainRepositoryUpdateArgs(t *testing.T) {
	updated := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	stored := domainRow("d-9", "nine.do", nil)
	stored[4], stored[5] = strPtr("v-2"), strPtr("Salud")
	db := &stubSQL{queue: [][]any{{updated}, stored}}
	repo := NewDomainRepository(db)

	d := domain.NewDomain()
	d.ID = "d-9"
	d.Name, d.TLD, d.DomainFull = "nine", "do", "nine.do"
	d.VerticalID = strPtr("v-2")
	if err := repo.Update(context.Background(), d); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(db.calls) != 2 || db.calls[0].query != sqlinline.QUpdateDomain || db.calls[1].query != sqlinline.QSelectDomainByID {
		t.Fatalf("expected update then reload, got %d calls", len(db.calls))
	}
	args := db.calls[0].args
	if len(args) != 24 || args[0] != "d-9" || args[3] != "nine.do" {
		t.Fatalf("unexpected update args: %#v", args)
	}
	if d.VerticalName == nil || *d.VerticalName != "Salud" {
		t.Fatalf("vertical name not reloaded: %v", d.VerticalName)
	}
}

func TestDomainRepositoryUpdateClearsJoinedName(t *testing.T) {
	stored := domainRow("d-9", "nine.do", nil)
	stored[4], stored[5] = nil, nil
	db := &stubSQL{queue: [][]any{{time.Now()}, stored}}

	d := domain.NewDomain()
	d.ID = "d-9"
	d.VerticalName = strPtr("Pets")
	if err := NewDomainRepository(db).Update(context.Background(), d); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if d.VerticalID != nil || d.VerticalName != nil {
		t.Fatalf("stale vertical kept after clearing: %v %v", d.VerticalID, d.VerticalName)
	}
}

func TestDomainRepositoryCreateReloadsMissingRow(t *testing.T) {
	db := &stubSQL{queue: [][]any{{"d-1", time.Now(), time.Now()}}}
	err := NewDomainRepository(db).Create(context.Background(), domain.NewDomain())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound when the reload misses, got %v", err)
	}
}

func TestDeleteMissingRowReturnsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		delete func(context.Context, string) error
	}{
		{"domain", NewDomainRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
		{"trademark", NewTrademarkRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
		{"trade name", NewTradeNameRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
		{"mercantile", NewMercantileRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
		{"watchlist", NewWatchlistRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
		{"attachment", NewAttachmentRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 0")}).Delete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.delete(context.Background(), "x"); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}

	ok := NewDomainRepository(&stubSQL{execTag: pgconn.NewCommandTag("DELETE 1")})
	if err := ok.Delete(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error deleting existing row: %v", err)
	}
}

func TestMapErrorTranslatesPgCodes(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{pgUniqueViolation, domain.ErrConflict},
		{pgForeignKeyViolation, domain.ErrInvalidInput},
		{pgCheckViolation, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		err := mapError("op", &pgconn.PgError{Code: tt.code})
		if !errors.Is(err, tt.want) {
			t.Fatalf("code %s mapped to %v, want %v", tt.code, err, tt.want)
		}
	}
	if mapError("op", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}

func trademarkRow(id string, created time.Time) []any {
	return []any{
		id, "Farmacia Plus", "marca", nil, nil, nil,
		strPtr("e-1"), strPtr("Grupo Plus SRL"),
		strPtr("v-1"), strPtr("Salud"),
		"registered", nil, nil, decimal.NullDecimal{}, nil, nil,
		created, created,
	}
}

func TestCreateTrademarkFillsGeneratedFields(t *testing.T) {
	created := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	db := &stubSQL{queue: [][]any{{"t-1", created, created}, trademarkRow("t-1", created)}}
	repo := NewTrademarkRepository(db)

	tm := domain.NewTrademark()
	tm.Name = "Farmacia Plus"
	tm.EntityID = strPtr("e-1")
	if err := repo.Create(context.Background(), tm); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tm.ID != "t-1" || !tm.CreatedAt.Equal(created) {
		t.Fatalf("generated fields not set: %+v", tm)
	}
	if tm.EntityName == nil || *tm.EntityName != "Grupo Plus SRL" || tm.VerticalName == nil || *tm.VerticalName != "Salud" {
		t.Fatalf("joined names not loaded after create: %+v", tm)
	}
	if args := db.calls[0].args; len(args) != 13 || args[0] != "Farmacia Plus" || args[1] != "marca" {
		t.Fatalf("unexpected insert args: %#v", args)
	}
	if db.last().query != sqlinline.QSelectTrademarkByID {
		t.Fatalf("expected reload by id after insert")
	}
}

func TestListVerticalsCollectsRows(t *testing.T) {
	db := &stubSQL{rows: [][]any{
		{"1", "pets", "Pets"},
		{"2", "salud", "Salud"},
	}}
	items, err := NewRefDataRepository(db).ListVerticals(context.Background())
	if err != nil {
		t.Fatalf("ListVerticals returned error: %v", err)
	}
	if len(items) != 2 || items[1].Slug != "salud" {
		t.Fatalf("unexpected verticals: %+v", items)
	}
}

func TestAttachmentCreateRejectsUnsupportedKind(t *testing.T) {
	db := &stubSQL{}
	err := NewAttachmentRepository(db).Create(context.Background(), &domain.Attachment{AssetKind: domain.KindDomain})
	if !errors.Is(err, domain.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	if len(db.calls) != 0 {
		t.Fatalf("no statement should run for unsupported kinds")
	}
}

func TestAttachmentListByAssetsBatches(t *testing.T) {
	created := time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC)
	db := &stubSQL{rows: [][]any{
		{"a-1", "trademark", "t-1", "x.pdf", "X.pdf", "application/pdf", int64(3), "trademark/x.pdf", created},
		{"a-2", "trademark", "t-2", "y.pdf", "Y.pdf", "application/pdf", int64(4), "trademark/y.pdf", created},
	}}
	repo := NewAttachmentRepository(db)

	items, err := repo.ListByAssets(context.Background(), domain.KindTrademark, []string{"t-1", "t-2"})
	if err != nil {
		t.Fatalf("ListByAssets returned error: %v", err)
	}
	if len(items) != 2 || items[1].AssetID != "t-2" {
		t.Fatalf("unexpected attachments: %+v", items)
	}
	if len(db.calls) != 1 || db.calls[0].query != sqlinline.QListAttachmentsByAssets {
		t.Fatalf("expected a single batched query, got %d calls", len(db.calls))
	}
	if ids, ok := db.calls[0].args[1].([]string); !ok || len(ids) != 2 || db.calls[0].args[0] != "trademark" {
		t.Fatalf("unexpected args: %#v", db.calls[0].args)
	}

	empty := &stubSQL{}
	items, err = NewAttachmentRepository(empty).ListByAssets(context.Background(), domain.KindMercantile, nil)
	if err != nil || items == nil || len(items) != 0 || len(empty.calls) != 0 {
		t.Fatalf("no ids should skip the query and return an empty slice: %v %#v %d", err, items, len(empty.calls))
	}
}

func TestStatsCounts(t *testing.T) {
	db := &stubSQL{row: []any{10, 4, 6, 3, 2, 1, 7}}
	counts, err := NewStatsRepository(db).Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts returned error: %v", err)
	}
	if counts.Domains != 10 || counts.ParkedDomains != 6 || counts.Watchlist != 7 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if counts.Total() != 16 {
		t.Fatalf("Total = %d, want 16", counts.Total())
	}
}
