// Package model contains run parameters, errors and DTOs shared between run modes
package model

import (
	"errors"
	"fmt"
)

type AppMode string

const (
	ModeLocal  = AppMode("local")
	ModeServer = AppMode("server")
	ModeRemote = AppMode("remote")
)

// IgnoreCaseEnv - presence of this variable switches search to case-insensitive mode
const IgnoreCaseEnv = "IGNORE_CASE"

var (
	ErrMissingArgument = errors.New("not enough arguments")
	ErrIO              = errors.New("io error")
)

// Config - run parameters of a single search, compared with ==
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

type AppInit struct {
	Mode    AppMode
	Address string
	Nodes   NodesList
	Quorum  int
	Config  Config
}

// NodesList - для чтения списка search-nodes в виде слайса из os.Args
type NodesList []string

func (n *NodesList) String() string {
	return fmt.Sprint(*n)
}

func (n *NodesList) Set(value string) error { // пустые адреса и дубликаты пропускаем
	if value == "" {
		return nil
	}
	for _, v := range *n {
		if v == value {
			return nil
		}
	}
	*n = append(*n, value)
	return nil
}

// SearchTask - задание для search-node
type SearchTask struct {
	TaskID     string `json:"tid" binding:"required"`
	Query      string `json:"query"`
	IgnoreCase bool   `json:"ignore_case"`
	Contents   string `json:"contents"`
}

type SearchResult struct {
	TaskID   string   `json:"tid" binding:"required"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
