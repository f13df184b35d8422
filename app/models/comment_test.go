package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentFieldsValidation(t *testing.T) {
	tests := []struct {
		name    string
		fields  CommentFields
		wantErr bool
	}{
		{
			name:    "valid comment",
			fields:  CommentFields{PostID: "p1", Author: "TotoroLover", Content: "Lovely!"},
			wantErr: false,
		},
		{
			name:    "empty author",
			fields:  CommentFields{PostID: "p1", Author: "", Content: "Lovely!"},
			wantErr: true,
		},
		{
			name:    "empty content",
			fields:  CommentFields{PostID: "p1", Author: "TotoroLover"},
			wantErr: true,
		},
		{
			name:    "missing post",
			fields:  CommentFields{Author: "TotoroLover", Content: "Lovely!"},
			wantErr: true,
		},
		{
			name:    "author too long",
			fields:  CommentFields{PostID: "p1", Author: strings.Repeat("a", 101), Content: "Lovely!"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewComment(t *testing.T) {
	comment := NewComment("c1", CommentFields{PostID: "p1", Author: "a", Content: "b"}, 42)
	assert.Equal(t, int64(42), comment.CreatedAt)
	assert.False(t, comment.Edited())

	data, err := json.Marshal(comment)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "updatedAt")

	comment.UpdatedAt = 50
	assert.True(t, comment.Edited())
}
