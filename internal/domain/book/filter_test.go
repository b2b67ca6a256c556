package book

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func TestCompile_NoFilters(t *testing.T) {
	clause, err := Compile(nil, nil)
	require.NoError(t, err)
	assert.True(t, clause.Empty())
	assert.Empty(t, clause.Args)
}

func TestCompile_EmptyStringsEqualAbsent(t *testing.T) {
	clause, err := Compile([]string{"", ""}, map[string]string{
		ParamBookName:   "",
		ParamAuthorName: "",
		ParamAvgRating:  "",
		ParamNumRating:  "",
	})
	require.NoError(t, err)
	assert.Equal(t, Clause{}, clause)
}

func TestCompile_GenresAndBookName(t *testing.T) {
	clause, err := Compile([]string{"Fantasy", "SciFi"}, map[string]string{ParamBookName: "Dune"})
	require.NoError(t, err)

	assert.Equal(t, "WHERE (genre_name = ? OR genre_name = ?) AND book_name = ?", clause.SQL)
	assert.Equal(t, []interface{}{"Fantasy", "SciFi", "Dune"}, clause.Args)
}

func TestCompile_GenresOnly(t *testing.T) {
	clause, err := Compile([]string{"Fantasy", "", "SciFi"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "WHERE (genre_name = ? OR genre_name = ?)", clause.SQL)
	assert.Equal(t, []interface{}{"Fantasy", "SciFi"}, clause.Args)
}

func TestCompile_ScalarOrderIsFixed(t *testing.T) {
	clause, err := Compile(nil, map[string]string{
		ParamNumRating:  "2",
		ParamAuthorName: "Frank Herbert",
		ParamAvgRating:  "3.5",
		ParamBookName:   "Dune",
	})
	require.NoError(t, err)

	assert.Equal(t, "WHERE book_name = ? AND author_name = ? AND avg_rating > ? AND num_rating > ?", clause.SQL)
	assert.Equal(t, []interface{}{"Dune", "Frank Herbert", 3.5, 2.0}, clause.Args)
}

func TestCompile_UnknownParamsIgnored(t *testing.T) {
	clause, err := Compile(nil, map[string]string{"synopsis": "sand", "page": "2"})
	require.NoError(t, err)
	assert.True(t, clause.Empty())
}

func TestCompile_InvalidNumber(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value string
	}{
		{"num_rating非数字", ParamNumRating, "many"},
		{"avg_rating非数字", ParamAvgRating, "3,5"},
		{"NaN", ParamAvgRating, "NaN"},
		{"Inf", ParamNumRating, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, err := Compile([]string{"Fantasy"}, map[string]string{tt.param: tt.value})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFilterValue))
			assert.Equal(t, apperrors.ErrCodeInvalidFilterValue, apperrors.GetAppError(err).Code)
			assert.Contains(t, err.Error(), tt.param)
			assert.True(t, clause.Empty())
		})
	}
}

// 任意组合下占位符数量都等于参数个数
func TestCompile_ArityAlwaysMatches(t *testing.T) {
	genreSets := [][]string{nil, {"A"}, {"A", "B"}, {"", "B", ""}, {"A", "B", "C"}}
	values := map[string][]string{
		ParamBookName:   {"", "Dune"},
		ParamAuthorName: {"", "Herbert"},
		ParamAvgRating:  {"", "3.5"},
		ParamNumRating:  {"", "0"},
	}

	for _, genres := range genreSets {
		for _, bn := range values[ParamBookName] {
			for _, an := range values[ParamAuthorName] {
				for _, ar := range values[ParamAvgRating] {
					for _, nr := range values[ParamNumRating] {
						clause, err := Compile(genres, map[string]string{
							ParamBookName:   bn,
							ParamAuthorName: an,
							ParamAvgRating:  ar,
							ParamNumRating:  nr,
						})
						require.NoError(t, err)
						assert.Equal(t, len(clause.Args), strings.Count(clause.SQL, "?"), clause.SQL)
						assert.False(t, strings.HasSuffix(clause.SQL, "AND"), clause.SQL)
						assert.False(t, strings.HasSuffix(clause.SQL, "OR"), clause.SQL)
						if len(clause.Args) == 0 {
							assert.Empty(t, clause.SQL)
						} else {
							assert.True(t, strings.HasPrefix(clause.SQL, "WHERE "), clause.SQL)
						}
					}
				}
			}
		}
	}
}
