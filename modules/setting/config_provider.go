// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"

	"code.gitea.io/gitobject/modules/log"
	"code.gitea.io/gitobject/modules/util"

	"gopkg.in/ini.v1" //nolint:depguard
)

// ConfigSection is the interface of a section in the config file
type ConfigSection interface {
	Name() string
	MapTo(any) error
	HasKey(key string) bool
	Key(key string) *ini.Key
	Keys() []*ini.Key
}

// ConfigProvider represents a config provider
type ConfigProvider interface {
	Section(section string) ConfigSection
	HasSection(name string) bool
}

type iniConfigProvider struct {
	file    string
	iniFile *ini.File
}

type iniConfigSection struct {
	sec *ini.Section
}

var _ ConfigProvider = (*iniConfigProvider)(nil)

func (s *iniConfigSection) Name() string {
	return s.sec.Name()
}

func (s *iniConfigSection) MapTo(v any) error {
	return s.sec.MapTo(v)
}

func (s *iniConfigSection) HasKey(key string) bool {
	return s.sec.HasKey(key)
}

func (s *iniConfigSection) Key(key string) *ini.Key {
	return s.sec.Key(key)
}

func (s *iniConfigSection) Keys() []*ini.Key {
	return s.sec.Keys()
}

func newLoadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		KeyValueDelimiterOnWrite: " = ",
		IgnoreContinuation:       true,
	}
}

// NewConfigProviderFromData this function is mainly for testing purpose
func NewConfigProviderFromData(configContent string) (ConfigProvider, error) {
	cfg, err := ini.LoadSources(newLoadOptions(), []byte(configContent))
	if err != nil {
		return nil, err
	}
	cfg.NameMapper = ini.SnackCase
	return &iniConfigProvider{iniFile: cfg}, nil
}

// NewConfigProviderFromFile load configuration from file.
// A missing file is not an error, all settings keep their default values.
func NewConfigProviderFromFile(file string) (ConfigProvider, error) {
	cfg := ini.Empty(newLoadOptions())
	if file != "" {
		exist, err := util.IsExist(file)
		if err != nil {
			return nil, fmt.Errorf("unable to check if %q exists: %w", file, err)
		}
		if exist {
			if err = cfg.Append(file); err != nil {
				return nil, fmt.Errorf("failed to load config file %q: %w", file, err)
			}
		} else {
			log.Debug("Config file %q doesn't exist, using default settings", file)
		}
	}
	cfg.NameMapper = ini.SnackCase
	return &iniConfigProvider{file: file, iniFile: cfg}, nil
}

func (p *iniConfigProvider) Section(section string) ConfigSection {
	return &iniConfigSection{sec: p.iniFile.Section(section)}
}

func (p *iniConfigProvider) HasSection(name string) bool {
	return p.iniFile.HasSection(name)
}

func mustMapSetting(rootCfg ConfigProvider, sectionName string, setting any) {
	if err := rootCfg.Section(sectionName).MapTo(setting); err != nil {
		log.Fatal("Failed to map %s settings: %v", sectionName, err)
	}
}

// LoadSettingsFromFile loads all settings from the given ini file
func LoadSettingsFromFile(file string) error {
	cfg, err := NewConfigProviderFromFile(file)
	if err != nil {
		return err
	}
	return LoadSettings(cfg)
}

// LoadSettingsFromData loads all settings from ini content, mainly for tests
func LoadSettingsFromData(content string) error {
	cfg, err := NewConfigProviderFromData(content)
	if err != nil {
		return err
	}
	return LoadSettings(cfg)
}

// LoadSettings loads all sections this module understands
func LoadSettings(rootCfg ConfigProvider) error {
	loadLogFrom(rootCfg)
	return loadGitFrom(rootCfg)
}
