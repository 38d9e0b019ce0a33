package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/core/domain"
)

func TestDependencyKind_Resolvable(t *testing.T) {
	tests := []struct {
		kind     domain.DependencyKind
		expected bool
	}{
		{domain.KindCask, true},
		{domain.KindFormula, true},
		{domain.KindMacOS, false},
		{domain.KindArch, false},
		{domain.DependencyKind("x11"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Resolvable())
		})
	}
}

func TestPkgVersionString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		revision int64
		expected string
	}{
		{name: "zero revision", version: "2.0", revision: 0, expected: "2.0"},
		{name: "positive revision", version: "2.0", revision: 1, expected: "2.0_1"},
		{name: "double digit revision", version: "1.2.3", revision: 12, expected: "1.2.3_12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.PkgVersionString(tt.version, tt.revision))
		})
	}
}

func TestDependencySnapshot_Records(t *testing.T) {
	revision := int64(0)
	snap := domain.DependencySnapshot{
		domain.KindCask: {
			domain.RecordEntry(&domain.DependencyRecord{FullName: "helper", Version: "0.9", DeclaredDirectly: true}),
		},
		domain.KindFormula: {
			domain.RecordEntry(&domain.DependencyRecord{
				FullName:         "bar",
				Version:          "2.0",
				Revision:         &revision,
				PkgVersion:       "2.0",
				DeclaredDirectly: true,
			}),
			domain.RawEntry("stray"),
		},
		domain.KindMacOS: {
			domain.RawEntry(">= 12"),
		},
	}

	t.Run("returns records in order", func(t *testing.T) {
		records := snap.Records(domain.KindCask)
		require.Len(t, records, 1)
		assert.Equal(t, "helper", records[0].FullName)
		assert.True(t, records[0].DeclaredDirectly)
	})

	t.Run("skips raw entries", func(t *testing.T) {
		records := snap.Records(domain.KindFormula)
		require.Len(t, records, 1)
		assert.Equal(t, "bar", records[0].FullName)
		assert.Equal(t, "2.0", records[0].PkgVersion)
	})

	t.Run("raw only kind yields no records", func(t *testing.T) {
		assert.Empty(t, snap.Records(domain.KindMacOS))
	})

	t.Run("missing kind yields nil", func(t *testing.T) {
		assert.Nil(t, snap.Records(domain.DependencyKind("missing")))
	})
}

func TestReceipt_InstalledAt(t *testing.T) {
	t.Run("no timestamp", func(t *testing.T) {
		r := &domain.Receipt{}
		_, ok := r.InstalledAt()
		assert.False(t, ok)
	})

	t.Run("with timestamp", func(t *testing.T) {
		ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local).Unix()
		r := &domain.Receipt{Time: &ts}
		at, ok := r.InstalledAt()
		require.True(t, ok)
		assert.Equal(t, ts, at.Unix())
	})
}

func TestReceipt_Summary(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local).Unix()

	tests := []struct {
		name     string
		receipt  *domain.Receipt
		expected string
	}{
		{
			name:     "bare",
			receipt:  &domain.Receipt{},
			expected: "Installed",
		},
		{
			name:     "from api",
			receipt:  &domain.Receipt{LoadedFromAPI: true},
			expected: "Installed using the API",
		},
		{
			name:     "with time",
			receipt:  &domain.Receipt{Time: &ts},
			expected: "Installed on 2024-03-01 at 10:30:00",
		},
		{
			name:     "from api with time",
			receipt:  &domain.Receipt{LoadedFromAPI: true, Time: &ts},
			expected: "Installed using the API on 2024-03-01 at 10:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.receipt.Summary())
		})
	}
}
