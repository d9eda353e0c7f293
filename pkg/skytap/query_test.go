package skytap_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *skytap.ListOptions
		expected url.Values
	}{
		{
			name:     "empty options",
			opts:     skytap.NewListOptions(),
			expected: url.Values{},
		},
		{
			name: "with count",
			opts: skytap.NewListOptions().WithCount(50),
			expected: url.Values{
				"count": []string{"50"},
			},
		},
		{
			name: "with offset",
			opts: skytap.NewListOptions().WithOffset(100),
			expected: url.Values{
				"offset": []string{"100"},
			},
		},
		{
			name: "with count and offset",
			opts: skytap.NewListOptions().WithCount(25).WithOffset(75),
			expected: url.Values{
				"count":  []string{"25"},
				"offset": []string{"75"},
			},
		},
		{
			name: "zero values are omitted",
			opts: &skytap.ListOptions{
				Count:  0,
				Offset: 0,
			},
			expected: url.Values{},
		},
		{
			name: "negative values are omitted",
			opts: &skytap.ListOptions{
				Count:  -1,
				Offset: -10,
			},
			expected: url.Values{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.opts.ToValues())
		})
	}
}

func TestListOptions_Chaining(t *testing.T) {
	t.Parallel()

	opts := skytap.NewListOptions().WithCount(10).WithOffset(20)

	assert.Equal(t, 10, opts.Count)
	assert.Equal(t, 20, opts.Offset)

	// Chaining mutates and returns the same instance
	same := opts.WithCount(30)
	assert.Same(t, opts, same)
	assert.Equal(t, 30, opts.Count)
}
