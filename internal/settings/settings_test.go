package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	saved Settings
	err   error
}

func (f *fakeRepo) GetSettings(ctx context.Context) (Settings, error) { return f.saved, f.err }

func (f *fakeRepo) SaveSettings(ctx context.Context, s Settings) error {
	if f.err != nil {
		return f.err
	}
	f.saved = s
	return nil
}

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())
	assert.Equal(t, 19.0, d.Mwst)
	assert.Equal(t, 60.0, d.Stundenlohn)
	assert.Equal(t, 60.0, d.Schnittpreis)
	assert.Equal(t, "{preis} * {anzahl}", d.EinkaufspreisFormel)
	assert.Equal(t, "{zeitaufwand} * {stundenlohn}", d.AufwandFormel)
}

func TestValidate_Ranges(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*Settings)
		field string
	}{
		{"mwst above 100", func(s *Settings) { s.Mwst = 100.5 }, "mwst"},
		{"mwst negative", func(s *Settings) { s.Mwst = -1 }, "mwst"},
		{"negative wage", func(s *Settings) { s.Stundenlohn = -0.01 }, "stundenlohn"},
		{"negative cut price", func(s *Settings) { s.Schnittpreis = -5 }, "schnittpreis"},
		{"unknown placeholder", func(s *Settings) { s.EinkaufspreisFormel = "{preis} * {rabatt}" }, "einkaufspreisFormel"},
		{"broken labor formula", func(s *Settings) { s.AufwandFormel = "{zeitaufwand} *" }, "aufwandsentschaedigungFormel"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mod(&s)

			err := s.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidate_Bounds(t *testing.T) {
	s := Defaults()
	s.Mwst = 0
	s.Stundenlohn = 0
	s.Schnittpreis = 0
	assert.NoError(t, s.Validate())

	s.Mwst = 100
	assert.NoError(t, s.Validate())
}

func TestParseForm(t *testing.T) {
	s, err := ParseForm(Form{
		Mwst:                "7",
		Stundenlohn:         "45,50",
		Schnittpreis:        " 30 ",
		EinkaufspreisFormel: " {preis} * {anzahl} * (1 + {mwst}/100) ",
		AufwandFormel:       "{zeitaufwand} * {stundenlohn}",
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Mwst)
	assert.Equal(t, 45.5, s.Stundenlohn)
	assert.Equal(t, 30.0, s.Schnittpreis)
	assert.Equal(t, "{preis} * {anzahl} * (1 + {mwst}/100)", s.EinkaufspreisFormel)
}

func TestParseForm_NonNumeric(t *testing.T) {
	form := Form{Mwst: "abc", Stundenlohn: "60", Schnittpreis: "60", EinkaufspreisFormel: "1", AufwandFormel: "1"}

	_, err := ParseForm(form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "mwst", verr.Field)

	form.Mwst = "19"
	form.Schnittpreis = ""
	_, err = ParseForm(form)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "schnittpreis", verr.Field)
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	store := NewStore(repo)

	require.Equal(t, uint64(0), store.Snapshot().Version)
	require.Equal(t, Defaults(), store.Snapshot().Settings)

	next := Defaults()
	next.Mwst = 7
	snap, err := store.Save(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, 7.0, repo.saved.Mwst)
	assert.Equal(t, snap, store.Snapshot())

	bad := next
	bad.Mwst = 150
	_, err = store.Save(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, 7.0, store.Snapshot().Settings.Mwst)
}

func TestStore_LoadAndRepoFailure(t *testing.T) {
	ctx := context.Background()
	persisted := Defaults()
	persisted.Stundenlohn = 80
	repo := &fakeRepo{saved: persisted}
	store := NewStore(repo)

	require.NoError(t, store.Load(ctx))
	assert.Equal(t, 80.0, store.Snapshot().Settings.Stundenlohn)

	repo.err = errors.New("locked")
	_, err := store.Save(ctx, Defaults())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Equal(t, 80.0, store.Snapshot().Settings.Stundenlohn)
	assert.Error(t, store.Load(ctx))
}
