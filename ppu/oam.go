package ppu

// spriteEntry is one decoded 4-byte primary OAM record. Only Y feeds
// evaluateSprites' per-scanline range check; tile/attr/x are carried
// through because real secondary OAM copies all four bytes per
// candidate sprite, but nothing here decodes the attribute byte's
// individual bits since sprite pixels are never composited.
// https://www.nesdev.org/wiki/PPU_OAM
type spriteEntry struct {
	y, tile, attr, x uint8
}

func decodeSprite(b []uint8) spriteEntry {
	return spriteEntry{y: b[0], tile: b[1], attr: b[2], x: b[3]}
}
