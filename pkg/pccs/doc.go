// Package pccs implements the Practical Color Co-ordinate System (PCCS).
//
// PCCS describes a colour by two axes: a hue on a 24-step colour circle and a
// tone that groups saturation and lightness into named categories (pale,
// dull, grayish, ...). Palettes built from one hue and a run of tones look
// coordinated because every colour shares the same base hue.
//
// # Hues
//
// Hues are numbered 1 through 24 and carry a short notation such as "2:R"
// or "18:B". [Hues] enumerates all of them in circle order.
//
// # Tones
//
// Tones are identified by their PCCS abbreviation ("v", "lt", "dkg", ...).
// [Tones] enumerates all twelve, and the saturation groups used for palette
// construction are exposed as [LowSaturationTones], [MiddleSaturationTones]
// and [HighSaturationTones].
//
// # Conversion
//
// [ToRGB] maps a tone and hue to an sRGB triple through CIE LCh. The vivid
// tone is outside the conversion's domain and is rejected with an
// UNSUPPORTED_TONE error; [SupportedTones] lists the tones that convert.
//
//	c, err := pccs.ToRGB(pccs.Soft, pccs.Hue(8))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Hex())
package pccs
