package sanitize

import "unicode"

// emojiTable covers the code points the emoji check treats as emoji. It tracks
// the Unicode Emoji property by block, with one deliberate deviation: the ASCII
// entries the property nominally includes (#, *, 0-9) are excluded, because
// without a variation selector they render as plain text and rejecting them
// would shred ordinary prose. Keycap sequences still contain U+FE0F and are
// caught by the disallowed-character check before this one runs.
//
// Over-matching inside an emoji block is acceptable here: this table gates a
// reject-only security check, so the failure mode of a too-wide range is a
// replaced cluster, never an admitted payload.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00A9, Stride: 1}, // copyright
		{Lo: 0x00AE, Hi: 0x00AE, Stride: 1}, // registered
		{Lo: 0x203C, Hi: 0x203C, Stride: 1}, // double exclamation mark
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // exclamation question mark
		{Lo: 0x2122, Hi: 0x2122, Stride: 1}, // trade mark
		{Lo: 0x2139, Hi: 0x2139, Stride: 1}, // information
		{Lo: 0x2194, Hi: 0x2199, Stride: 1}, // arrows
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1}, // arrows with hook
		{Lo: 0x231A, Hi: 0x231B, Stride: 1}, // watch, hourglass
		{Lo: 0x2328, Hi: 0x2328, Stride: 1}, // keyboard
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1}, // eject
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1}, // media controls
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1}, // pause, stop, record
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}, // circled M
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1}, // small squares
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1}, // play button
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1}, // reverse button
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1}, // medium squares
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1}, // curved arrows
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1}, // heavy arrows
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1}, // large squares
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1}, // star
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1}, // heavy large circle
		{Lo: 0x3030, Hi: 0x3030, Stride: 1}, // wavy dash
		{Lo: 0x303D, Hi: 0x303D, Stride: 1}, // part alternation mark
		{Lo: 0x3297, Hi: 0x3297, Stride: 1}, // circled congratulations
		{Lo: 0x3299, Hi: 0x3299, Stride: 1}, // circled secret
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F02F, Stride: 1}, // mahjong tiles, dominoes
		{Lo: 0x1F0A0, Hi: 0x1F0FF, Stride: 1}, // playing cards
		{Lo: 0x1F170, Hi: 0x1F171, Stride: 1}, // A/B buttons
		{Lo: 0x1F17E, Hi: 0x1F17F, Stride: 1}, // O/P buttons
		{Lo: 0x1F18E, Hi: 0x1F18E, Stride: 1}, // AB button
		{Lo: 0x1F191, Hi: 0x1F19A, Stride: 1}, // squared CL..VS
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F201, Hi: 0x1F202, Stride: 1}, // squared katakana
		{Lo: 0x1F21A, Hi: 0x1F21A, Stride: 1}, // squared CJK "free of charge"
		{Lo: 0x1F22F, Hi: 0x1F22F, Stride: 1}, // squared CJK "reserved"
		{Lo: 0x1F232, Hi: 0x1F23A, Stride: 1}, // squared CJK ideographs
		{Lo: 0x1F250, Hi: 0x1F251, Stride: 1}, // circled CJK ideographs
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map symbols
		{Lo: 0x1F7E0, Hi: 0x1F7EB, Stride: 1}, // colored circles and squares
		{Lo: 0x1F7F0, Hi: 0x1F7F0, Stride: 1}, // heavy equals sign
		{Lo: 0x1F90C, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols and pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // symbols and pictographs extended-A
	},
	LatinOffset: 2,
}

// IsEmoji reports whether the rune carries the Emoji property as tracked by
// this package. See emojiTable for the ASCII deviation.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}
