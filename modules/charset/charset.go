// Copyright 2014 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/setting"

	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// UTF8BOM is the utf-8 byte-order marker
var UTF8BOM = []byte{'\xef', '\xbb', '\xbf'}

type ConvertOpts struct {
	KeepBOM bool
}

// detectedCharsetOrder breaks ties between detection results with the same confidence
var detectedCharsetOrder = []string{
	"utf-8",
	"utf-16be",
	"utf-16le",
	"utf-32be",
	"utf-32le",
	"iso-8859-1",
	"windows-1252",
	"iso-8859-2",
	"windows-1250",
	"iso-8859-5",
	"windows-1251",
	"koi8-r",
	"shift_jis",
	"euc-jp",
	"iso-2022-jp",
	"euc-kr",
	"gb-18030",
	"big5",
}

func charsetScore(label string) (int, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, name := range detectedCharsetOrder {
		if name == label {
			return i, true
		}
	}
	return 0, false
}

// ToUTF8 converts content to UTF8 encoding
func ToUTF8(content []byte, opts ConvertOpts) (string, error) {
	charsetLabel, err := DetectEncoding(content)
	if err != nil {
		return "", err
	} else if charsetLabel == "UTF-8" {
		return string(MaybeRemoveBOM(content, opts)), nil
	}
	return decodeWithLabel(content, charsetLabel, opts)
}

func decodeWithLabel(content []byte, charsetLabel string, opts ConvertOpts) (string, error) {
	encoding, _ := charset.Lookup(charsetLabel)
	if encoding == nil {
		return string(content), fmt.Errorf("unknown encoding: %s", charsetLabel)
	}

	// If there is an error, we concatenate the nicely decoded part and the
	// original left over. This way we won't lose much data.
	result, n, err := transform.Bytes(encoding.NewDecoder(), content)
	if err != nil {
		result = append(result, content[n:]...)
	}

	return string(MaybeRemoveBOM(result, opts)), err
}

// ToUTF8WithLabel converts content declared to be in the given encoding to UTF-8.
// An empty label means UTF-8, as git assumes for commit messages without an "encoding" header.
// Content which does not match its label falls back to detection, and as a last resort is returned unchanged.
func ToUTF8WithLabel(content []byte, label string) string {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		if utf8.Valid(content) {
			return string(content)
		}
	} else if result, err := decodeWithLabel(content, label, ConvertOpts{KeepBOM: true}); err == nil {
		return result
	} else {
		log.Debug("Unable to convert content from declared encoding %q: %v", label, err)
	}

	result, err := ToUTF8(content, ConvertOpts{KeepBOM: true})
	if err != nil {
		return string(content)
	}
	return result
}

// MaybeRemoveBOM removes a UTF-8 BOM from a []byte when opts.KeepBOM is false
func MaybeRemoveBOM(content []byte, opts ConvertOpts) []byte {
	if opts.KeepBOM {
		return content
	}
	if len(content) > 2 && bytes.Equal(content[0:3], UTF8BOM) {
		return content[3:]
	}
	return content
}

// DetectEncoding detect the encoding of content
func DetectEncoding(content []byte) (string, error) {
	// First we check if the content represents valid utf8 content excepting a truncated character at the end.
	// Walk backwards from the end to trim off an incomplete character.
	toValidate := content
	end := len(toValidate) - 1

	if end < 0 {
		// no-op
	} else if toValidate[end]>>5 == 0b110 {
		// Incomplete 1 byte extension e.g. © <c2><a9> which has been truncated to <c2>
		toValidate = toValidate[:end]
	} else if end > 0 && toValidate[end]>>6 == 0b10 && toValidate[end-1]>>4 == 0b1110 {
		// Incomplete 2 byte extension e.g. ⛔ <e2><9b><94> which has been truncated to <e2><9b>
		toValidate = toValidate[:end-1]
	} else if end > 1 && toValidate[end]>>6 == 0b10 && toValidate[end-1]>>6 == 0b10 && toValidate[end-2]>>3 == 0b11110 {
		// Incomplete 3 byte extension e.g. 💩 <f0><9f><92><a9> which has been truncated to <f0><9f><92>
		toValidate = toValidate[:end-2]
	}
	if utf8.Valid(toValidate) {
		log.Trace("Detected encoding: utf-8 (fast)")
		return "UTF-8", nil
	}

	textDetector := chardet.NewTextDetector()
	var detectContent []byte
	if len(content) < 1024 {
		// Check if original content is valid
		if _, err := textDetector.DetectBest(content); err != nil {
			return "", err
		}
		times := 1024 / len(content)
		detectContent = make([]byte, 0, times*len(content))
		for range times {
			detectContent = append(detectContent, content...)
		}
	} else {
		detectContent = content
	}

	// DetectBest and results[0] are not stable, so we need a tie break
	results, err := textDetector.DetectAll(detectContent)
	if err != nil {
		if err == chardet.NotDetectedError && len(setting.Git.AnsiCharset) > 0 {
			log.Debug("Using default AnsiCharset: %s", setting.Git.AnsiCharset)
			return setting.Git.AnsiCharset, nil
		}
		return "", err
	}

	topConfidence := results[0].Confidence
	topResult := results[0]
	priority, has := charsetScore(topResult.Charset)
	for _, result := range results {
		// results are sorted by confidence
		if result.Confidence != topConfidence {
			break
		}
		resultPriority, resultHas := charsetScore(result.Charset)
		if resultHas && (!has || resultPriority < priority) {
			topResult = result
			priority = resultPriority
			has = true
		}
	}

	if topResult.Charset != "UTF-8" && len(setting.Git.AnsiCharset) > 0 {
		log.Debug("Using default AnsiCharset: %s", setting.Git.AnsiCharset)
		return setting.Git.AnsiCharset, err
	}

	log.Debug("Detected encoding: %s", topResult.Charset)
	return topResult.Charset, err
}
