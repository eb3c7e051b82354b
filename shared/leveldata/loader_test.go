package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="288" width="640" height="32"/>
  <object id="2" x="320" y="240" width="64" height="48"/>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="3" x="96" y="208" width="80" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="FloatingPlatforms">
  <object id="4" x="448" y="200" width="64" height="8">
   <properties>
    <property name="travel" type="float" value="48"/>
    <property name="duration" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="5" x="200" y="240">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="6" x="32" y="240"/>
 </objectgroup>
</map>
`

const noSpawnMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(testMap)},
	}

	level, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name = %q, want test", level.Name)
	}
	if level.Width != 640 || level.Height != 320 {
		t.Errorf("size = %dx%d, want 640x320", level.Width, level.Height)
	}
	if len(level.Solids) != 2 {
		t.Fatalf("len(Solids) = %d, want 2", len(level.Solids))
	}
	if got, want := level.Solids[1], (Rect{X: 320, Y: 240, W: 64, H: 48}); got != want {
		t.Errorf("Solids[1] = %+v, want %+v", got, want)
	}
	if len(level.Platforms) != 1 {
		t.Errorf("len(Platforms) = %d, want 1", len(level.Platforms))
	}
	if len(level.FloatingPlatforms) != 1 {
		t.Fatalf("len(FloatingPlatforms) = %d, want 1", len(level.FloatingPlatforms))
	}
	fp := level.FloatingPlatforms[0]
	if fp.Travel != 48 || fp.Duration != 1.5 {
		t.Errorf("floating platform travel/duration = %v/%v, want 48/1.5", fp.Travel, fp.Duration)
	}

	if len(level.SpawnPoints) != 2 {
		t.Fatalf("len(SpawnPoints) = %d, want 2", len(level.SpawnPoints))
	}
	if sp := level.SpawnPoints[0]; sp.Index != 0 || sp.X != 32 {
		t.Errorf("first spawn = %+v, want index 0 at x=32", sp)
	}
}

func TestLoadRequiresSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(noSpawnMap)},
	}

	_, err := Load(fsys, "levels/empty.tmx")
	if !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":    {Data: []byte(testMap)},
		"levels/a.tmx":    {Data: []byte(testMap)},
		"levels/notes.md": {Data: []byte("ignored")},
	}

	levels, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}
	if levels[0].Name != "a" || levels[1].Name != "b" {
		t.Errorf("order = %s, %s; want a, b", levels[0].Name, levels[1].Name)
	}

	if _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("LoadAll on empty dir: want error")
	}
}
