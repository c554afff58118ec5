package oled

import (
	"fmt"

	"github.com/glowkit/oled/pixel"
)

// SSD1306 command set, as in the datasheet.
const (
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setIRefSelect         = 0xAD
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDeselect       = 0xDB
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
)

// SSD1306 opens a driver for the Solomon Systech SSD1306 OLED controller and
// initializes the panel.
func SSD1306(conn Conn, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}

	var (
		displayClockDiv byte
		comPins         byte
		colStart        byte
	)
	switch {
	case config.Width == 64 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 64 && config.Height == 48:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 96 && config.Height == 16:
		displayClockDiv, comPins, colStart = 0x60, 0x02, 0
	case config.Width == 128 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x02, 0
	case config.Width == 128 && config.Height == 64:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 0
	default:
		return nil, fmt.Errorf("oled: SSD1306 unsupported size %dx%d", config.Width, config.Height)
	}

	d := &Display{
		PageImage: pixel.NewPageImage(config.Width, config.Height),
		c:         conn,
		pages:     config.Height >> 3,
		colStart:  colStart,
		colEnd:    colStart + byte(config.Width),
	}

	if err := d.command(
		setDisplayOff,
		setDisplayClockDiv, displayClockDiv,
		setMultiplexRatio, byte(config.Height-1),
		setDisplayOffset, 0x00,
		setStartLine,
		setChargePump, 0x14,
		setMemoryMode, 0x00, // horizontal addressing
		setSegmentRemap,
		setComScanDec,
		setComPins, comPins,
		setPrecharge, 0xF1,
		setVComDeselect, 0x30,
		setIRefSelect, 0x30,
		setDisplayAllOnResume,
		setNormalDisplay,
	); err != nil {
		return nil, err
	}

	if err := d.SetContrast(0xCF); err != nil {
		return nil, err
	}
	if err := d.Refresh(); err != nil {
		return nil, err
	}
	if err := d.Show(true); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Display) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("SSD1306 OLED %dx%d", bounds.Dx(), bounds.Dy())
}

// Refresh pushes the framebuffer to the display. Each page goes out as one
// addressing command sequence followed by a single data transaction; the
// whole buffer is written, there is no dirty-region tracking.
func (d *Display) Refresh() (err error) {
	for page := 0; page < d.pages; page++ {
		if err = d.command(
			setColumnAddr, d.colStart, d.colEnd-1,
			setPageAddr, byte(page), byte(d.pages-1),
		); err != nil {
			return
		}
		var (
			off = page * d.Stride
			end = off + d.Stride
		)
		if err = d.data(d.Pix[off:end]...); err != nil {
			return
		}
	}
	return nil
}

// Show toggles the panel on or off. The framebuffer and display RAM are left
// untouched.
func (d *Display) Show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *Display) SetContrast(level uint8) error {
	return d.command(setContrast, level)
}

// Invert toggles inverted output, without touching the framebuffer.
func (d *Display) Invert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

// Close switches the panel off and closes the connection.
func (d *Display) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}
