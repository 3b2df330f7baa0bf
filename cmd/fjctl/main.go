// Command fjctl is a small interactive REPL for exercising image/jpeg
// against local files, tokenizing commands with github.com/google/shlex
// the way a constrained device's serial console would parse typed input.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/shlex"

	"github.com/tinyimage/fjpeg/image/jpeg"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("fjctl - type 'help' for commands")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if !dispatch(args) {
			return
		}
	}
}

func dispatch(args []string) bool {
	switch args[0] {
	case "quit", "exit":
		return false
	case "help":
		fmt.Println("commands: info <path>, decode <path> <out.raw>, quit")
	case "info":
		if len(args) != 2 {
			fmt.Println("usage: info <path>")
			return true
		}
		cmdInfo(args[1])
	case "decode":
		if len(args) != 3 {
			fmt.Println("usage: decode <path> <out.raw>")
			return true
		}
		cmdDecode(args[1], args[2])
	default:
		fmt.Println("unknown command:", args[0])
	}
	return true
}

func cmdInfo(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}
	w, h, err := jpeg.Info(data)
	if err != nil {
		fmt.Println("info failed:", err)
		return
	}
	fmt.Printf("%s: %dx%d\n", path, w, h)
}

// cmdDecode decodes path and writes the raw RGB565 row stream to out, as
// a 4-byte little-endian (width, height) header followed by
// width*height little-endian uint16 samples, row-major.
func cmdDecode(path, out string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}

	w, h, err := jpeg.Info(data)
	if err != nil {
		fmt.Println("info failed:", err)
		return
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}
	defer f.Close()

	var header [4]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(w))
	binary.LittleEndian.PutUint16(header[2:4], uint16(h))
	if _, err := f.Write(header[:]); err != nil {
		log.Println("write failed:", err)
		return
	}

	rowBuf := make([]byte, w*2)
	start := time.Now()
	err = jpeg.Decode(data, func(y, width int, pix []uint16, ctx any) {
		for i, px := range pix {
			binary.LittleEndian.PutUint16(rowBuf[i*2:], px)
		}
		f.Write(rowBuf[:width*2])
	}, nil)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Printf("decoded %dx%d in %s -> %s\n", w, h, time.Since(start), out)
}
