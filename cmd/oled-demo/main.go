// Command oled-demo exercises an SSD1306 OLED on a real bus: it draws a test
// pattern and, when packed fonts are given, renders text with each of them.
//
// Usage:
//
//	oled-demo [flags] <i2c|spi> [font.pf ...]
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/glowkit/oled"
	"github.com/glowkit/oled/draw"
	"github.com/glowkit/oled/pixel"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	textFlag := flag.String("text", "Hello, OLED!", "Demo text")
	contrastFlag := flag.Uint("contrast", 0xCF, "Contrast level")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <i2c|spi> [font.pf ...]\n", os.Args[0])
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn oled.Conn
		err  error
	)
	switch busType := flag.Arg(0); busType {
	case "i2c":
		conn, err = oled.OpenI2C(&oled.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		conn, err = oled.OpenSPI(&oled.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Reset:  gpioreg.ByName(*resetPinFlag),
			DC:     gpioreg.ByName(*dcPinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	display, err := oled.SSD1306(conn, &oled.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer display.Close()

	fmt.Printf("using display: %s\n", display)
	if err = display.SetContrast(uint8(*contrastFlag)); err != nil {
		fatal(err)
	}

	fonts := flag.Args()[1:]
	if err = display.LoadFonts(fonts...); err != nil {
		fatal(err)
	}

	// Test pattern: border, diagonals and a center circle.
	bounds := display.Bounds()
	draw.Rectangle(display, bounds, pixel.On)
	draw.Line(display, bounds.Min, bounds.Max.Sub(image.Pt(1, 1)), pixel.On)
	draw.Line(display, image.Pt(0, bounds.Max.Y-1), image.Pt(bounds.Max.X-1, 0), pixel.On)
	draw.Circle(display, image.Pt(bounds.Dx()/2, bounds.Dy()/2), bounds.Dy()/3, pixel.On)
	if err = display.Refresh(); err != nil {
		fatal(err)
	}
	time.Sleep(2 * time.Second)

	for _, path := range fonts {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err = display.SelectFont(name); err != nil {
			fatal(err)
		}

		display.Fill(false)
		for i, y := 0, 1; i < 3; i++ {
			if err = display.Text(*textFlag, 1, y); err != nil {
				fatal(err)
			}
			f, _ := display.Fonts().Get(name)
			y += f.Height + 2
		}
		if err = display.Refresh(); err != nil {
			fatal(err)
		}

		fmt.Printf("font %s\n", name)
		time.Sleep(2 * time.Second)
	}

	// Blink via the invert command, the framebuffer stays untouched.
	for i := 0; i < 4; i++ {
		if err = display.Invert(i%2 == 0); err != nil {
			fatal(err)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
