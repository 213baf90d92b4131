package factory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectID(t *testing.T) {
	a, b := ProjectID(), ProjectID()
	assert.True(t, strings.HasPrefix(a, "proj-"))
	assert.NotEqual(t, a, b)
	assert.False(t, IsMigratedProjectID(a))
}

func TestMigratedProjectID(t *testing.T) {
	id := MigratedProjectID(time.UnixMilli(1700000000000))
	assert.Equal(t, "migrated-1700000000000", id)
	assert.True(t, IsMigratedProjectID(id))
}

func TestProject(t *testing.T) {
	p := Project("proj-1", 3, time.UnixMilli(10))
	assert.Len(t, p.History, 3)
	assert.Equal(t, "prompt 1", p.Title)
	assert.Equal(t, "<div>3</div>", p.ActiveDesign.HTMLCode)
	assert.Equal(t, []string{"10", "11", "12"}, []string{p.History[0].ID, p.History[1].ID, p.History[2].ID})

	empty := Project("proj-2", 0, time.UnixMilli(10))
	assert.Nil(t, empty.ActiveDesign)
	assert.Empty(t, empty.History)
}

func TestJSONRPCRequest(t *testing.T) {
	req := JSONRPCRequest("studio/listProjects", nil)
	assert.Equal(t, "studio/listProjects", req.Method())

	n := JSONRPCNotification("studio/toast", map[string]string{"message": "hi"})
	assert.Equal(t, "studio/toast", n.Method())
}
