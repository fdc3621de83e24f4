package lrn_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-lrn"
	"github.com/KimNorgaard/go-lrn/internal/testutil"
	"github.com/stretchr/testify/require"
)

const sample = "# test\n" +
	"% 2\n" +
	"% 3\n" +
	"% 9\t1\t1\n" +
	"% Key\tA\tB\n" +
	"1\t0.5\t1.2\n" +
	"2\t0.7\t3.4\n"

func TestUnmarshal(t *testing.T) {
	ds, err := lrn.Unmarshal([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, [][]float64{{1, 0.5, 1.2}, {2, 0.7, 3.4}}, ds.Data)
	require.Equal(t, []lrn.ColumnType{lrn.UniqueKey, lrn.Data, lrn.Data}, ds.ColumnTypes)
	require.Equal(t, []int{1, 2}, ds.Key)
	require.Equal(t, []string{"Key", "A", "B"}, ds.Names)
	require.Equal(t, "Key", ds.KeyName)
	require.Equal(t, "test", ds.Comment)
	require.Equal(t, 2, ds.Rows())
	require.Equal(t, 3, ds.Cols())
}

func TestUnmarshal_Layouts(t *testing.T) {
	t.Run("No comment", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 9\t1\n% Id\tX\n7\t-1.5\n"))
		require.NoError(t, err)
		require.Equal(t, "", ds.Comment)
		require.Equal(t, []int{7}, ds.Key)
		require.Equal(t, "Id", ds.KeyName)
	})

	t.Run("Multi-line comment", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("# first\n#\n#second\n% 0\n% 1\n% 9\n% Key\n"))
		require.NoError(t, err)
		require.Equal(t, "first\n\nsecond", ds.Comment)
	})

	t.Run("Space separated header and rows", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("%2\n%   2\n% 9 1\n% Key   A\n1   2.5\n2 3.5\n"))
		require.NoError(t, err)
		require.Equal(t, [][]float64{{1, 2.5}, {2, 3.5}}, ds.Data)
		require.Equal(t, []string{"Key", "A"}, ds.Names)
	})

	t.Run("CRLF and blank lines", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("# c\r\n% 2\r\n% 2\r\n% 9\t1\r\n% Key\tA\r\n1\t2\r\n\r\n2\t3\r\n\r\n\n"))
		require.NoError(t, err)
		require.Equal(t, "c", ds.Comment)
		require.Equal(t, [][]float64{{1, 2}, {2, 3}}, ds.Data)
	})

	t.Run("Surrounding whitespace and trailing tabs", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 9\t1\t\n% Key\tA\t\n  1\t2.25\t\n"))
		require.NoError(t, err)
		require.Equal(t, [][]float64{{1, 2.25}}, ds.Data)
	})

	t.Run("Names with spaces", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 9\t1\n% Case Id\tBody Mass\n1\t70\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"Case Id", "Body Mass"}, ds.Names)
		require.Equal(t, "Case Id", ds.KeyName)
	})

	t.Run("Exponent notation", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 9\t1\n% Key\tA\n1e0\t6.02E23\n"))
		require.NoError(t, err)
		require.Equal(t, [][]float64{{1, 6.02e23}}, ds.Data)
		require.Equal(t, []int{1}, ds.Key)
	})

	t.Run("Key not in first column", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 2\n% 3\n% 1\t0\t9\n% A\tB\tId\n0.5\t3\t10\n0.25\t4\t20\n"))
		require.NoError(t, err)
		require.Equal(t, 2, ds.KeyIndex())
		require.Equal(t, []int{10, 20}, ds.Key)
		require.Equal(t, "Id", ds.KeyName)
		require.Equal(t, []lrn.ColumnType{lrn.Data, lrn.Ignore, lrn.UniqueKey}, ds.ColumnTypes)
	})

	t.Run("First of several key columns wins", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 9\t9\n% K1\tK2\n3\t4\n"))
		require.NoError(t, err)
		require.Equal(t, []int{3}, ds.Key)
		require.Equal(t, "K1", ds.KeyName)
	})

	t.Run("No key column", func(t *testing.T) {
		ds, err := lrn.Unmarshal([]byte("% 1\n% 2\n% 1\t1\n% A\tB\n3\t4\n"))
		require.NoError(t, err)
		require.Equal(t, -1, ds.KeyIndex())
		require.Empty(t, ds.Key)
		require.Empty(t, ds.KeyName)
		require.Equal(t, [][]float64{{3, 4}}, ds.Data)
	})
}

func TestUnmarshal_Empty(t *testing.T) {
	ds, err := lrn.Unmarshal([]byte("% 0\n% 2\n% 9\t1\n% Key\tA\n"))
	require.NoError(t, err)
	require.Equal(t, 0, ds.Rows())
	require.NotNil(t, ds.Data)
	require.Empty(t, ds.Data)
	require.Empty(t, ds.Key)
	require.Equal(t, "Key", ds.KeyName)
	require.Equal(t, 2, ds.Cols())
}

func TestUnmarshal_LargeDeclaredCount(t *testing.T) {
	// A huge declared row count must fail on the missing rows, not on allocation.
	_, err := lrn.Unmarshal([]byte("% 999999999999\n% 1\n% 9\n% Key\n1\n"))
	require.EqualError(t, err, "lrn: line 5: unexpected end of file, expected data row 2 of 999999999999")
}

func TestDecoder(t *testing.T) {
	src, err := testutil.ReadTestData("iris.lrn")
	require.NoError(t, err)

	ds, err := lrn.NewDecoder(strings.NewReader(string(src))).Decode()
	require.NoError(t, err)
	require.Equal(t, "Fisher iris sample\nsix cases, four features", ds.Comment)
	require.Equal(t, []int{1, 2, 51, 52, 101, 102}, ds.Key)
	require.Equal(t, []string{"Key", "Sepal Length", "Sepal Width", "Petal Length", "Petal Width"}, ds.Names)
	require.Equal(t, []float64{101, 6.3, 3.3, 6, 2.5}, ds.Data[4])
}

func TestDecoder_NilReader(t *testing.T) {
	_, err := lrn.NewDecoder(nil).Decode()
	require.EqualError(t, err, "lrn: Decode(nil reader)")
}
