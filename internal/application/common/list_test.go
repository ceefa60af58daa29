package common

import (
	"testing"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestListFilter_ToFilter(t *testing.T) {
	tests := []struct {
		name string
		in   ListFilter
		want shared.Filter
	}{
		{
			name: "defaults",
			in:   ListFilter{},
			want: shared.Filter{Page: 1, PageSize: 20, OrderBy: "created_at", OrderDir: "desc"},
		},
		{
			name: "every field carried over",
			in:   ListFilter{Search: "latte", Trashed: true, Page: 3, PageSize: 50, OrderBy: "name", OrderDir: "asc"},
			want: shared.Filter{Page: 3, PageSize: 50, OrderBy: "name", OrderDir: "asc", Search: "latte", Trashed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToFilter())
		})
	}
}

func TestDefaultFilter_MatchesEmptyListFilter(t *testing.T) {
	assert.Equal(t, shared.DefaultFilter(), ListFilter{}.ToFilter())
}
