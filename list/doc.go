// Package list provides a capacity-bounded array usable with any element
// type.
//
// A List is created with a fixed capacity and never grows. Element storage
// is one contiguous allocation, either from the Go heap (New) or carved from
// an arena (NewIn). Appending to a full list follows an explicit Policy:
//
//	l := list.New[int32](2, list.WithPolicy(list.DropNewest))
//	_ = l.Append(10)
//	_ = l.Append(20)
//	_ = l.Append(30) // dropped, l.Len() == 2
//
// The default policy is Reject, which returns status.ErrCapacityExceeded so
// overflow is never silent unless asked for.
package list
