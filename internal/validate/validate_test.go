package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCarNames(t *testing.T) {
	assert.Equal(t, []string{"pobi", "crong", "honux"}, SplitCarNames("pobi,crong,honux"))
	assert.Equal(t, []string{"pobi", "crong"}, SplitCarNames(" pobi , crong "))
	assert.Equal(t, []string{"pobi", "", "crong"}, SplitCarNames("pobi,,crong"))
	assert.Equal(t, []string{""}, SplitCarNames(""))
}

func TestSplitCarNames_NormalisesHangul(t *testing.T) {
	// U+D55C written as decomposed jamo (U+1112 U+1161 U+11AB)
	decomposed := "\u1112\u1161\u11ab"
	names := SplitCarNames(decomposed)

	require.Len(t, names, 1)
	assert.Equal(t, "\ud55c", names[0])
}

func TestValidateCarName_AcceptsOneToFive(t *testing.T) {
	for _, name := range []string{"a", "ab", "abc", "abcd", "abcde", "자동차", "다섯글자임"} {
		assert.NoError(t, ValidateCarName(name), "name=%q", name)
	}
}

func TestValidateCarName_RejectsEmptyAndLong(t *testing.T) {
	for _, name := range []string{"", "abcdef", "pengoose", "여섯글자입니다"} {
		err := ValidateCarName(name)
		require.Error(t, err, "name=%q", name)

		var lengthErr *LengthOverflowError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, MaxNameLength, lengthErr.Max)
		assert.True(t, strings.HasPrefix(err.Error(), ErrorPrefix))
	}
}

func TestValidateCarName_CountsDecomposedHangulAsComposed(t *testing.T) {
	// five syllables, fifteen code points when decomposed
	decomposed := strings.Repeat("\u1112\u1161\u11ab", 5)
	assert.NoError(t, ValidateCarName(decomposed))
}

func TestValidateCarName_AllLengths(t *testing.T) {
	for n := 0; n <= 10; n++ {
		err := ValidateCarName(strings.Repeat("x", n))
		if n >= MinNameLength && n <= MaxNameLength {
			assert.NoError(t, err, "len=%d", n)
		} else {
			assert.Error(t, err, "len=%d", n)
		}
	}
}

func TestParseCarNames_Pengoose(t *testing.T) {
	names, err := ParseCarNames("pengoose")
	require.Error(t, err)
	assert.Nil(t, names)
	assert.Equal(t, CodeLengthOverflow, Code(err))
	assert.Contains(t, err.Error(), "pengoose")
}

func TestParseCarNames_Valid(t *testing.T) {
	names, err := ParseCarNames("pobi,crong,honux")
	require.NoError(t, err)
	assert.Equal(t, []string{"pobi", "crong", "honux"}, names)
}

func TestParseCarNames_RejectsEmptySegment(t *testing.T) {
	_, err := ParseCarNames("pobi,,crong")
	assert.Equal(t, CodeLengthOverflow, Code(err))
}

func TestValidateCarNames_RejectsDuplicates(t *testing.T) {
	err := ValidateCarNames([]string{"pobi", "crong", "pobi"})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, Code(err))

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "cars", argErr.Field)
	assert.Equal(t, "pobi", argErr.Value)
}

func TestValidateTotalRounds(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"5", 5, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, err := ValidateTotalRounds(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, CodeInvalidArgument, Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode_UnknownError(t *testing.T) {
	assert.Equal(t, "", Code(fmt.Errorf("boom")))
	assert.False(t, IsValidationError(nil))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", &LengthOverflowError{Max: 5})))
}
