// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"
)

func modifyFromJson(cfg mutableContractInterfaceConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return err
	}

	if err := populateConfig(cfg, data); err != nil {
		return err
	}

	return nil
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableContractInterfaceConfig, data map[string]interface{}) error {
	for key, value := range data {

		if key == "contract-abi" {
			if _, isString := value.(string); !isString {
				// inline ABI given as JSON rather than as an escaped string
				encoded, err := json.Marshal(value)
				if err != nil {
					return fmt.Errorf("could not decode value for config key %s: %s", key, err)
				}
				cfg.SetString(CONTRACT_ABI, string(encoded))
				continue
			}
		} else if key == "contract-abi-path" {
			path, isString := value.(string)
			if !isString {
				return fmt.Errorf("could not decode value for config key %s: expected a file path but got %v", key, value)
			}
			abiJson, err := readAbiFile(path)
			if err != nil {
				return fmt.Errorf("could not decode value for config key %s: %s", key, err)
			}
			cfg.SetString(CONTRACT_ABI, abiJson)
			continue
		}

		switch value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), value.(bool))
		case float64:
			cfg.SetUint64(convertKeyName(key), uint64(value.(float64)))
		case string:
			if duration, decodeError := time.ParseDuration(value.(string)); decodeError != nil {
				cfg.SetString(convertKeyName(key), value.(string))
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		}
	}

	return nil
}

// readAbiFile accepts either a bare ABI array or a compiler artifact with an "abi" field.
func readAbiFile(path string) (string, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}

	return extractAbi(contents)
}

func extractAbi(contents []byte) (string, error) {
	trimmed := bytes.TrimSpace(contents)
	if len(trimmed) == 0 {
		return "", errors.New("empty abi")
	}

	if trimmed[0] == '[' {
		return string(trimmed), nil
	}

	var artifact struct {
		Abi json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(trimmed, &artifact); err != nil {
		return "", errors.Wrap(err, "abi file is neither an abi array nor an artifact")
	}
	if len(artifact.Abi) == 0 {
		return "", errors.New("artifact has no abi field")
	}

	return string(artifact.Abi), nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func GetConfigFromFiles(configFiles FilesPaths) (ContractInterfaceConfig, error) {
	cfg := defaultConfig()

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// GetConfigFromEnvironment loads the given dotenv files (missing ones are skipped, existing variables win)
// and then reads the process environment on top of the defaults.
func GetConfigFromEnvironment(envFiles ...string) (ContractInterfaceConfig, error) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "failed loading %s", envFile)
		}
	}

	cfg := defaultConfig()
	if err := modifyFromEnvironment(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func modifyFromEnvironment(cfg mutableContractInterfaceConfig, lookup func(string) (string, bool)) error {
	if value, found := lookup("PROVIDER_URI"); found {
		cfg.SetString(ETHEREUM_ENDPOINT, value)
	}
	if value, found := lookup(ETHEREUM_ENDPOINT); found {
		cfg.SetString(ETHEREUM_ENDPOINT, value)
	}

	for _, key := range []string{CONTRACT_ADDRESS, CONTRACT_ABI, MNEMONIC, DERIVATION_PATH} {
		if value, found := lookup(key); found {
			cfg.SetString(key, value)
		}
	}

	if value, found := lookup("CONTRACT_ABI_PATH"); found {
		abiJson, err := readAbiFile(value)
		if err != nil {
			return errors.Wrapf(err, "could not read CONTRACT_ABI_PATH %s", value)
		}
		cfg.SetString(CONTRACT_ABI, abiJson)
	}

	if value, found := lookup(MNEMONIC_REQUIRED); found {
		required, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "could not parse %s", MNEMONIC_REQUIRED)
		}
		cfg.SetBool(MNEMONIC_REQUIRED, required)
	}

	if value, found := lookup(STATIC_GAS_LIMIT); found {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "could not parse %s", STATIC_GAS_LIMIT)
		}
		cfg.SetUint64(STATIC_GAS_LIMIT, limit)
	}

	if value, found := lookup(METRICS_REPORT_INTERVAL); found {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "could not parse %s", METRICS_REPORT_INTERVAL)
		}
		cfg.SetDuration(METRICS_REPORT_INTERVAL, interval)
	}

	return nil
}
