package checksig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type signatureVector struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
	Valid     bool   `json:"valid"`
}

type keyVector struct {
	PrivateKey          string `json:"private_key"`
	Compressed          bool   `json:"compressed"`
	AddressCompressed   string `json:"address_compressed"`
	AddressUncompressed string `json:"address_uncompressed"`
}

type testVectors struct {
	Signatures []signatureVector `json:"signatures"`
	Keys       []keyVector       `json:"keys"`
}

func fixturesDir() string {
	return filepath.Join("..", "..", "fixtures")
}

// loadTestVectors reads fixtures/test_vectors.json
func loadTestVectors() (*testVectors, error) {
	file, err := os.Open(filepath.Join(fixturesDir(), "test_vectors.json"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var vectors testVectors
	if err := json.NewDecoder(file).Decode(&vectors); err != nil {
		return nil, err
	}
	return &vectors, nil
}
