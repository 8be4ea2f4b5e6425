package dwarfdump_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/adapters/dwarfdump"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const fatBinaryOutput = `UUID: 6A2C4F3E-1B7D-3C44-9E21-0F5A8B9D7C11 (arm64) /build/App.dSYM/Contents/Resources/DWARF/App
UUID: 0D1E2F3A-4B5C-3D6E-8F70-A1B2C3D4E5F6 (x86_64) /build/App.dSYM/Contents/Resources/DWARF/App
`

func TestInspector_Inspect(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), "dwarfdump", []string{"-u", "/build/App.dSYM"}).
		Return([]byte(fatBinaryOutput), nil)

	inspector := dwarfdump.NewInspector(runner, "")

	info, err := inspector.Inspect(context.Background(), "/build/App.dSYM")
	require.NoError(t, err)
	assert.Equal(t, "/build/App.dSYM", info.Path)
	assert.Equal(t, "6A2C4F3E-1B7D-3C44-9E21-0F5A8B9D7C11", info.UUID)
	assert.Equal(t, "arm64", info.Arch)
	assert.Equal(t, "/build/App.dSYM/Contents/Resources/DWARF/App", info.Binary)
}

func TestInspector_Inspect_CustomTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), "/opt/llvm/bin/llvm-dwarfdump", []string{"-u", "/b/Lib.dSYM"}).
		Return([]byte("UUID: AAAA (arm64) /b/Lib.dSYM/Contents/Resources/DWARF/Lib\n"), nil)

	inspector := dwarfdump.NewInspector(runner, "/opt/llvm/bin/llvm-dwarfdump")

	info, err := inspector.Inspect(context.Background(), "/b/Lib.dSYM")
	require.NoError(t, err)
	assert.Equal(t, "AAAA", info.UUID)
}

func TestInspector_Inspect_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("warning: no dSYM found\n"), nil)

	inspector := dwarfdump.NewInspector(runner, "")

	info, err := inspector.Inspect(context.Background(), "/build/Broken.dSYM")
	require.Error(t, err)
	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domain.ErrInspectionSkipped))
}

func TestInspector_Inspect_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Output(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, zerr.Wrap(domain.ErrCommandFailed, "exit status 1"))

	inspector := dwarfdump.NewInspector(runner, "")

	_, err := inspector.Inspect(context.Background(), "/build/App.dSYM")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		uuid    string
		arch    string
		binary  string
		wantErr bool
	}{
		{
			name:   "FirstRecordWins",
			output: fatBinaryOutput,
			uuid:   "6A2C4F3E-1B7D-3C44-9E21-0F5A8B9D7C11",
			arch:   "arm64",
			binary: "/build/App.dSYM/Contents/Resources/DWARF/App",
		},
		{
			name:   "RecordAfterNoise",
			output: "dwarfdump version 1\nUUID: BEEF (armv7) /x/My App.dSYM/Contents/Resources/DWARF/My App\n",
			uuid:   "BEEF",
			arch:   "armv7",
			binary: "/x/My App.dSYM/Contents/Resources/DWARF/My App",
		},
		{name: "Empty", output: "", wantErr: true},
		{name: "IndentedIsIgnored", output: "  UUID: BEEF (arm64) /x\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := dwarfdump.Parse("/x", []byte(tt.output))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.uuid, info.UUID)
			assert.Equal(t, tt.arch, info.Arch)
			assert.Equal(t, tt.binary, info.Binary)
		})
	}
}

func TestToolFromEnv(t *testing.T) {
	t.Setenv(dwarfdump.ToolEnv, "")
	assert.Equal(t, dwarfdump.DefaultTool, dwarfdump.ToolFromEnv())

	t.Setenv(dwarfdump.ToolEnv, "/usr/local/bin/llvm-dwarfdump")
	assert.Equal(t, "/usr/local/bin/llvm-dwarfdump", dwarfdump.ToolFromEnv())
}
