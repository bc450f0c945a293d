package utils

// Observer is notified with a value of T by the Subject it registered with
type Observer[T any] interface {
	Update(T)
}

type Subject[T any] interface {
	Register(Observer[T])
	Unregister(Observer[T])
	Notify(T)
}
