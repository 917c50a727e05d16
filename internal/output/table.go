package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Guliveer/sysinfo/internal/models"
)

// table accumulates rows for one tabwriter block.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(out io.Writer) error {
	if t.title != "" {
		fmt.Fprintf(out, "%s\n", t.title)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if len(t.headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
		seps := make([]string, len(t.headers))
		for i, h := range t.headers {
			seps[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(tw, strings.Join(seps, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

// keyValue builds a two-column table from ordered pairs.
func keyValue(title string, pairs ...[2]string) *table {
	t := &table{title: title, headers: []string{"Field", "Value"}}
	for _, p := range pairs {
		t.add(p[0], p[1])
	}
	return t
}

func (w *Writer) writeTables(snap *models.Snapshot) error {
	for _, section := range snap.Sections() {
		data, _ := snap.Get(section)
		if _, err := fmt.Fprintf(w.out, "== %s ==\n\n", section.Title()); err != nil {
			return err
		}
		for _, t := range tablesFor(data) {
			if err := t.render(w.out); err != nil {
				return err
			}
		}
	}
	return nil
}

// tablesFor splits a section record into one table per sub-record.
func tablesFor(data any) []*table {
	switch v := data.(type) {
	case models.OSInfo:
		return osTables(v)
	case models.CPUInfo:
		return cpuTables(v)
	case models.MemoryInfo:
		return memoryTables(v)
	case models.DiskInfo:
		return diskTables(v)
	case models.NetworkInfo:
		return networkTables(v)
	case models.CollectorError:
		return []*table{{rows: [][]string{{"error: " + v.Error}}}}
	default:
		return []*table{{rows: [][]string{{fmt.Sprintf("%v", v)}}}}
	}
}

func osTables(v models.OSInfo) []*table {
	return []*table{keyValue("",
		[2]string{"System", v.System},
		[2]string{"Release", v.Release},
		[2]string{"Version", v.Version},
		[2]string{"Platform", strings.TrimSpace(v.Platform + " " + v.PlatformVersion)},
		[2]string{"Architecture", v.Architecture},
		[2]string{"Machine", v.Machine},
		[2]string{"Processor", v.Processor},
		[2]string{"Hostname", v.Hostname},
		[2]string{"Username", v.Username},
		[2]string{"Boot time", v.BootTime},
	)}
}

func cpuTables(v models.CPUInfo) []*table {
	physical := models.NotAvailable
	if v.PhysicalCores != nil {
		physical = strconv.Itoa(*v.PhysicalCores)
	}
	summary := keyValue("",
		[2]string{"Physical cores", physical},
		[2]string{"Total cores", strconv.Itoa(v.TotalCores)},
		[2]string{"Max frequency", v.MaxFrequency},
		[2]string{"Current frequency", v.CurrentFrequency},
		[2]string{"Total CPU usage", v.TotalUsage},
	)

	cores := &table{title: "Usage per core", headers: []string{"Core", "Usage"}}
	for i, u := range v.PerCoreUsage {
		cores.add(strconv.Itoa(i), u+"%")
	}
	return []*table{summary, cores}
}

func memoryTables(v models.MemoryInfo) []*table {
	return []*table{
		keyValue("",
			[2]string{"Total", v.Total},
			[2]string{"Available", v.Available},
			[2]string{"Used", v.Used},
			[2]string{"Percentage", v.Percentage},
		),
		keyValue("Swap",
			[2]string{"Total", v.Swap.Total},
			[2]string{"Free", v.Swap.Free},
			[2]string{"Used", v.Swap.Used},
			[2]string{"Percentage", v.Swap.Percentage},
		),
	}
}

func diskTables(v models.DiskInfo) []*table {
	parts := &table{
		title:   "Partitions",
		headers: []string{"Device", "Mountpoint", "FS type", "Total", "Used", "Free", "Percentage"},
	}
	for _, p := range v.Partitions {
		if p.Denied() {
			parts.add(p.Device, p.Mountpoint, p.FSType, p.Access, "", "", "")
			continue
		}
		parts.add(p.Device, p.Mountpoint, p.FSType, p.Total, p.Used, p.Free, p.Percentage)
	}
	tables := []*table{parts}

	if v.IO != nil {
		tables = append(tables, keyValue("I/O since boot",
			[2]string{"Read", v.IO.ReadBytes},
			[2]string{"Written", v.IO.WriteBytes},
			[2]string{"Read operations", strconv.FormatUint(v.IO.ReadCount, 10)},
			[2]string{"Write operations", strconv.FormatUint(v.IO.WriteCount, 10)},
		))
	}
	return tables
}

func networkTables(v models.NetworkInfo) []*table {
	names := make([]string, 0, len(v.Interfaces))
	for name := range v.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)

	ifaces := &table{
		title:   "Interfaces",
		headers: []string{"Interface", "Family", "Address", "Netmask", "Broadcast"},
	}
	for _, name := range names {
		for _, a := range v.Interfaces[name] {
			broadcast := a.Broadcast
			if broadcast == "" {
				broadcast = models.Unset
			}
			ifaces.add(name, a.Family, a.Address, a.Netmask, broadcast)
		}
	}
	tables := []*table{ifaces}

	if v.IO != nil {
		tables = append(tables, keyValue("I/O since boot",
			[2]string{"Bytes sent", v.IO.BytesSent},
			[2]string{"Bytes received", v.IO.BytesRecv},
			[2]string{"Packets sent", strconv.FormatUint(v.IO.PacketsSent, 10)},
			[2]string{"Packets received", strconv.FormatUint(v.IO.PacketsRecv, 10)},
		))
	}
	return tables
}
