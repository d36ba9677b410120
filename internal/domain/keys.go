package domain

func (a Airline) Key() int64   { return a.ID }
func (p Passenger) Key() int64 { return p.ID }
func (a Airplane) Key() int64  { return a.ID }
func (f Flight) Key() int64    { return f.ID }
func (s Seat) Key() int64      { return s.ID }
func (p Payment) Key() int64   { return p.ID }
func (t Ticket) Key() int64    { return t.ID }
