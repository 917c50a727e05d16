package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_SetKeepsInsertionOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Set(SectionNetwork, NetworkInfo{})
	snap.Set(SectionOS, OSInfo{System: "Linux"})
	snap.Set(SectionNetwork, CollectorError{Error: "boom"})

	assert.Equal(t, []Section{SectionNetwork, SectionOS}, snap.Sections())
	assert.Equal(t, 2, snap.Len())

	data, ok := snap.Get(SectionNetwork)
	require.True(t, ok)
	assert.Equal(t, CollectorError{Error: "boom"}, data)

	_, ok = snap.Get(SectionCPU)
	assert.False(t, ok)
}

func TestSnapshot_MarshalJSONOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Set(SectionMemory, MemoryInfo{Total: "1.00GB"})
	snap.Set(SectionCPU, CPUInfo{TotalCores: 2})

	out, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(out), `"memory"`), strings.Index(string(out), `"cpu"`))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded, 2)
	assert.Contains(t, decoded, "memory")
	assert.Contains(t, decoded, "cpu")
}

func TestSnapshot_MarshalJSONEmpty(t *testing.T) {
	out, err := json.Marshal(NewSnapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestSnapshot_MarshalYAMLOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Set(SectionDisk, DiskInfo{Partitions: []DiskPartition{
		NewDeniedPartition("/dev/sdb1", "/mnt/secret", "ext4"),
	}})
	snap.Set(SectionOS, OSInfo{System: "Linux", Release: "6.1.0"})

	out, err := yaml.Marshal(snap)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "disk:"), text)
	assert.Less(t, strings.Index(text, "disk:"), strings.Index(text, "os:"))
	assert.Contains(t, text, "access: permission denied")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Len(t, decoded, 2)
}

func TestDiskPartition_Variants(t *testing.T) {
	usage := NewUsagePartition("/dev/sda1", "/", "ext4", DiskUsage{
		Total: "100.00GB", Used: "40.00GB", Free: "60.00GB", Percentage: "40.0%",
	})
	denied := NewDeniedPartition("/dev/sdb1", "/mnt/secret", "ext4")

	assert.False(t, usage.Denied())
	assert.Empty(t, usage.Access)
	assert.True(t, denied.Denied())
	assert.Equal(t, AccessDenied, denied.Access)

	out, err := json.Marshal(usage)
	require.NoError(t, err)
	assert.JSONEq(t, `{"device":"/dev/sda1","mountpoint":"/","fstype":"ext4",
		"total":"100.00GB","used":"40.00GB","free":"60.00GB","percentage":"40.0%"}`, string(out))

	out, err = json.Marshal(denied)
	require.NoError(t, err)
	assert.JSONEq(t, `{"device":"/dev/sdb1","mountpoint":"/mnt/secret","fstype":"ext4",
		"access":"permission denied"}`, string(out))
}

func TestMemoryInfo_RawBytesNotSerialized(t *testing.T) {
	out, err := json.Marshal(MemoryInfo{Total: "1.00KB", TotalBytes: 1024, UsedBytes: 512})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "1024")
	assert.NotContains(t, string(out), "TotalBytes")
}
