package centrifuge

import (
	"math/big"

	gojson "github.com/goccy/go-json"
)

// dropboxWireBeacon mirrors the JSON object the Dropbox LAN sync client
// broadcasts to UDP port 17500. version is a byte array (e.g. [2,0]) and
// host_int is a 128-bit unsigned integer, too wide for any Go machine int.
type dropboxWireBeacon struct {
	Version     []byte   `json:"version"`
	HostInt     *big.Int `json:"host_int"`
	Namespaces  []uint64 `json:"namespaces"`
	DisplayName string   `json:"displayname"`
	Port        uint16   `json:"port"`
}

// parseDropboxBeacon decodes a Dropbox discovery beacon. Any JSON decode
// failure, or a payload that isn't a JSON object at all, falls back to the
// caller's generic UDP classification.
func parseDropboxBeacon(data []byte) (DropboxBeacon, error) {
	var wire dropboxWireBeacon
	if err := gojson.Unmarshal(data, &wire); err != nil {
		return DropboxBeacon{}, errWrongProtocol()
	}
	if len(wire.Version) == 0 && wire.DisplayName == "" && wire.Port == 0 {
		return DropboxBeacon{}, errParsingError()
	}

	hostInt := wire.HostInt
	if hostInt == nil {
		hostInt = new(big.Int)
	}

	return DropboxBeacon{
		Version:     wire.Version,
		HostInt:     hostInt,
		Namespaces:  wire.Namespaces,
		DisplayName: wire.DisplayName,
		Port:        wire.Port,
	}, nil
}
