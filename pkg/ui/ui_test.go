package ui

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestFromViperNoColor(t *testing.T) {
	v := viper.New()
	v.Set(constants.NoColorFlag, true)

	_, ok := FromViper(v).(*cli.BasicUi)
	require.True(t, ok)
}
