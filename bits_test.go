package swiss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteRepeat(t *testing.T) {
	require.Equal(t, uint64(0), byteRepeat(0x00))
	require.Equal(t, uint64(0x8181818181818181), byteRepeat(0x81))
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), byteRepeat(0xFF))
}

func TestMatchByte(t *testing.T) {
	tests := []struct {
		name   string
		group  uint64
		target uint8
		want   bitset
	}{
		{
			name:   "no lanes match",
			group:  0x81_81_81_81_81_81_81_81,
			target: 0x93,
			want:   0,
		},
		{
			name:   "single match in lane 0",
			group:  0x81_81_81_81_81_81_81_93,
			target: 0x93,
			want:   0x00_00_00_00_00_00_00_80,
		},
		{
			name:   "single match in lane 7",
			group:  0x93_81_81_81_81_81_81_81,
			target: 0x93,
			want:   0x80_00_00_00_00_00_00_00,
		},
		{
			name:   "all lanes match",
			group:  0x93_93_93_93_93_93_93_93,
			target: 0x93,
			want:   0x80_80_80_80_80_80_80_80,
		},
		{
			name:   "prefix never matches empty marker",
			group:  0x00_00_00_00_00_00_00_00,
			target: 0x80,
			want:   0,
		},
		{
			name:   "scattered matches",
			group:  0xA5_00_A5_81_00_A5_81_00,
			target: 0xA5,
			want:   0x80_00_80_00_00_80_00_00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchByte(tt.group, byteRepeat(tt.target))
			require.Equalf(t, tt.want, got, "matchByte(0x%016X, 0x%02X) = 0x%016X, want 0x%016X", tt.group, tt.target, got, tt.want)
		})
	}
}

func TestMatchEmpty(t *testing.T) {
	tests := []struct {
		name  string
		group uint64
		want  bitset
	}{
		{
			name:  "all empty",
			group: 0,
			want:  0x80_80_80_80_80_80_80_80,
		},
		{
			name:  "all occupied",
			group: 0x81_F3_80_92_A0_FF_80_81,
			want:  0,
		},
		{
			name:  "single empty lane",
			group: 0x81_81_81_81_00_81_81_81,
			want:  0x00_00_00_00_80_00_00_00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, matchEmpty(tt.group))
		})
	}
}

func TestBitset_First(t *testing.T) {
	require.Equal(t, 0, bitset(0x00_00_00_00_00_00_00_80).first())
	require.Equal(t, 3, bitset(0x00_00_00_00_80_00_00_00).first())
	require.Equal(t, 7, bitset(0x80_00_00_00_00_00_00_00).first())
	require.Equal(t, groupSize, bitset(0).first())
}

func TestBitset_RemoveFirst(t *testing.T) {
	b := bitset(0x80_00_80_00_00_80_00_00)

	require.Equal(t, 2, b.first())

	b = b.removeFirst()
	require.Equal(t, 5, b.first())

	b = b.removeFirst()
	require.Equal(t, 7, b.first())

	b = b.removeFirst()
	require.Equal(t, bitset(0), b)
}
