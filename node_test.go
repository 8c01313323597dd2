package hud

import "testing"

// quietEngine returns an engine whose log output is captured instead of
// written to stderr.
func quietEngine(t *testing.T) (*Engine, *[]string) {
	t.Helper()
	var logged []string
	e := NewEngine()
	e.SetLog(func(format string, args ...any) {
		logged = append(logged, format)
	})
	return e, &logged
}

func TestNewEngineHasRoot(t *testing.T) {
	e, _ := quietEngine(t)
	root, ok := e.Find(RootUID)
	if !ok {
		t.Fatal("root not found on a fresh engine")
	}
	if root != e.Root() {
		t.Error("Find(RootUID) != Root()")
	}
	if root.Kind != kindRoot {
		t.Errorf("root kind = %q", root.Kind)
	}
	if e.NumNodes() != 1 {
		t.Errorf("NumNodes = %d, want 1", e.NumNodes())
	}
}

func TestAddChildBasic(t *testing.T) {
	e, _ := quietEngine(t)
	n := e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel})
	if n == nil {
		t.Fatal("AddChild returned nil")
	}
	if n.Parent != e.Root() {
		t.Error("parent should be root")
	}
	if e.Root().NumChildren() != 1 || e.Root().ChildAt(0) != n {
		t.Error("child not appended to root")
	}
	found, ok := e.Find(1)
	if !ok || found != n {
		t.Error("Find(1) should return the new node")
	}
	if n.HasRect {
		t.Error("rectangle must be absent until first layout")
	}
}

func TestAddChildMissingParentIsNoOp(t *testing.T) {
	e, logged := quietEngine(t)
	before := e.NumNodes()
	n := e.AddChild(42, NodeSpec{UID: 1, Kind: kindPanel})
	if n != nil {
		t.Error("AddChild with missing parent should return nil")
	}
	if e.NumNodes() != before {
		t.Errorf("node count changed: %d -> %d", before, e.NumNodes())
	}
	if len(*logged) == 0 {
		t.Error("structural error should be logged")
	}
}

func TestAddChildDuplicateUIDIsNoOp(t *testing.T) {
	e, _ := quietEngine(t)
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel})
	before := e.NumNodes()
	if n := e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindButton}); n != nil {
		t.Error("duplicate uid should be rejected")
	}
	if e.NumNodes() != before {
		t.Error("node count changed on rejected add")
	}
}

func TestAddChildRootUIDIsReserved(t *testing.T) {
	e, _ := quietEngine(t)
	if n := e.AddChild(RootUID, NodeSpec{UID: RootUID, Kind: kindPanel}); n != nil {
		t.Error("RootUID must be rejected for children")
	}
}

func TestAddChildPreservesCallOrder(t *testing.T) {
	e, _ := quietEngine(t)
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel})
	e.AddChild(RootUID, NodeSpec{UID: 2, Kind: kindPanel})
	e.AddChild(RootUID, NodeSpec{UID: 3, Kind: kindPanel})

	children := e.Root().Children()
	if len(children) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(children))
	}
	for i, want := range []UID{1, 2, 3} {
		if children[i].UID != want {
			t.Errorf("children[%d].UID = %d, want %d", i, children[i].UID, want)
		}
	}
}

func TestAddChildFiresCreateAndInvalidates(t *testing.T) {
	e, _ := quietEngine(t)
	var created []UID
	e.Register("probe", func(e *Engine, n *Node, msg Message) Response {
		if msg.Kind == MsgCreate {
			created = append(created, n.UID)
		}
		return Response{}
	})
	pendingBefore := e.PendingInvalidations()
	e.AddChild(RootUID, NodeSpec{UID: 7, Kind: "probe"})
	if len(created) != 1 || created[0] != 7 {
		t.Errorf("created = %v, want [7]", created)
	}
	if e.PendingInvalidations() != pendingBefore+1 {
		t.Error("AddChild should enqueue the parent for layout")
	}
}

func TestRegisterLastWins(t *testing.T) {
	e, _ := quietEngine(t)
	var hit string
	e.Register("k", func(*Engine, *Node, Message) Response { hit = "first"; return Response{} })
	e.Register("k", func(*Engine, *Node, Message) Response { hit = "second"; return Response{} })
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: "k"})
	if hit != "second" {
		t.Errorf("dispatched to %q, want the last registration", hit)
	}
}

func TestFindAbsent(t *testing.T) {
	e, _ := quietEngine(t)
	if _, ok := e.Find(12345); ok {
		t.Error("Find on an absent uid must report not found")
	}
}

func TestRemove(t *testing.T) {
	e, _ := quietEngine(t)
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel})
	e.AddChild(1, NodeSpec{UID: 2, Kind: kindPanel})
	e.SetProp(2, "custom", "x")

	if !e.Remove(1) {
		t.Fatal("Remove(1) failed")
	}
	if e.Root().NumChildren() != 0 {
		t.Error("root should have no children")
	}
	for _, uid := range []UID{1, 2} {
		if _, ok := e.Find(uid); ok {
			t.Errorf("node %d still findable after subtree removal", uid)
		}
		if _, ok := e.Prop(uid, "custom"); ok {
			t.Errorf("props for %d not purged", uid)
		}
	}
}

func TestRemoveFiresDestroyBeforeDetach(t *testing.T) {
	e, _ := quietEngine(t)
	sawSelf := false
	e.Register("probe", func(e *Engine, n *Node, msg Message) Response {
		if msg.Kind == MsgDestroy {
			// At destroy time the node must still be resolvable.
			_, sawSelf = e.Find(n.UID)
		}
		return Response{}
	})
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: "probe"})
	e.Remove(1)
	if !sawSelf {
		t.Error("MsgDestroy must arrive before detachment")
	}
}

func TestRemoveDestroyOrder(t *testing.T) {
	e, _ := quietEngine(t)
	var destroyed []UID
	e.Register("probe", func(e *Engine, n *Node, msg Message) Response {
		if msg.Kind == MsgDestroy {
			destroyed = append(destroyed, n.UID)
		}
		return Response{}
	})
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: "probe"})
	e.AddChild(1, NodeSpec{UID: 2, Kind: "probe"})
	e.AddChild(1, NodeSpec{UID: 3, Kind: "probe"})
	e.Remove(1)

	want := []UID{1, 2, 3}
	if len(destroyed) != len(want) {
		t.Fatalf("destroyed = %v, want %v", destroyed, want)
	}
	for i := range want {
		if destroyed[i] != want[i] {
			t.Errorf("destroyed = %v, want %v", destroyed, want)
			break
		}
	}
}

func TestRemoveRootRejected(t *testing.T) {
	e, _ := quietEngine(t)
	if e.Remove(RootUID) {
		t.Error("the root must not be removable")
	}
	if _, ok := e.Find(RootUID); !ok {
		t.Error("root disappeared")
	}
}

func TestRemoveMissing(t *testing.T) {
	e, logged := quietEngine(t)
	if e.Remove(99) {
		t.Error("Remove of a missing uid should fail")
	}
	if len(*logged) == 0 {
		t.Error("missing-node removal should be logged")
	}
}

func TestRemovedNodeIsDisposed(t *testing.T) {
	e, _ := quietEngine(t)
	n := e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel})
	e.Remove(1)
	if !n.IsDisposed() {
		t.Error("removed node should report disposed")
	}
}

func TestUserData(t *testing.T) {
	e, _ := quietEngine(t)
	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindPanel, UserData: "initial"})

	v, ok := e.UserDataFor(1)
	if !ok || v != "initial" {
		t.Errorf("UserDataFor(1) = (%v, %v)", v, ok)
	}
	if !e.SetUserData(1, 42) {
		t.Error("SetUserData failed on a live node")
	}
	v, _ = e.UserDataFor(1)
	if v != 42 {
		t.Errorf("user data = %v, want 42", v)
	}
}

func TestUserDataMissingNode(t *testing.T) {
	e, _ := quietEngine(t)
	if _, ok := e.UserDataFor(9); ok {
		t.Error("UserDataFor on a missing uid must report not found")
	}
	if e.SetUserData(9, 1) {
		t.Error("SetUserData on a missing uid must fail")
	}
}
