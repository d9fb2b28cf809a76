package service

import (
	"crypto/rand"
	"path"
	"strings"
)

// keyAlphabet — нижний base32 без паддинга для суффиксов ключей.
const keyAlphabet = "abcdefghijklmnopqrstuvwxyz234567"

const (
	keyRandomLen   = 8
	keyChecksumLen = 2
)

// uniqueFileKey собирает устойчивый к коллизиям ключ файла: к стему имени
// добавляется случайный суффикс с контрольными символами (10 знаков,
// сгруппированных блоками по 5), расширение сохраняется.
//
//	"report.pdf" -> "report-k3n7q-w2abc.pdf"
//
// Ключом объекта и FileEntry становится именно он, а не пользовательское имя:
// повторная загрузка одного имени даёт разные ключи.
func uniqueFileKey(filename string) string {
	base := path.Base(strings.TrimSpace(filename))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if stem == "" {
		stem = "file"
	}

	suffix := checksummedSuffix()

	return stem + "-" + suffix[:5] + "-" + suffix[5:] + ext
}

// checksummedSuffix — 8 случайных символов + 2 контрольных от их суммы.
// Контрольные символы позволяют отсечь опечатки в ключе до похода в БД.
func checksummedSuffix() string {
	raw := make([]byte, keyRandomLen)
	// rand.Read из crypto/rand не возвращает ошибку с Go 1.24.
	_, _ = rand.Read(raw)

	out := make([]byte, 0, keyRandomLen+keyChecksumLen)
	sum := 0
	for _, b := range raw {
		idx := int(b) % len(keyAlphabet)
		sum += idx
		out = append(out, keyAlphabet[idx])
	}

	out = append(out, keyAlphabet[sum%len(keyAlphabet)])
	out = append(out, keyAlphabet[(sum/len(keyAlphabet))%len(keyAlphabet)])

	return string(out)
}
