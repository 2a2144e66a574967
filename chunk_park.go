package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func (e *Engine) readParkChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkPark, func(r *binio.Reader) error {
		p := &st.Park
		p.Name = r.String()
		p.Cash = r.Int64()
		p.BankLoan = r.Int64()
		p.MaxBankLoan = r.Int64()
		p.BankLoanInterestRate = r.Uint8()
		p.Flags = r.Uint32()
		p.EntranceFee = r.Int16()
		p.StaffHandymanColour = r.Uint8()
		p.StaffMechanicColour = r.Uint8()
		p.StaffSecurityColour = r.Uint8()
		p.SamePriceThroughout = r.Uint64()

		// finances: the table is stored with explicit dimensions so
		// larger engines can shrink without misreading
		numMonths := r.Uint32()
		if numMonths > world.ExpenditureMonthCount {
			numMonths = world.ExpenditureMonthCount
		}
		numTypes := r.Uint32()
		if numTypes > world.ExpenditureTypeCount {
			numTypes = world.ExpenditureTypeCount
		}
		for i := uint32(0); i < numMonths; i++ {
			for j := uint32(0); j < numTypes; j++ {
				p.ExpenditureTable[i][j] = r.Int64()
			}
		}
		p.HistoricalProfit = r.Int64()

		numCampaigns := r.Uint32()
		p.MarketingCampaigns = p.MarketingCampaigns[:0]
		for i := uint32(0); i < numCampaigns; i++ {
			var mc world.MarketingCampaign
			mc.Type = r.Uint8()
			mc.WeeksLeft = r.Uint8()
			mc.Flags = r.Uint8()
			mc.RideID = r.Uint16()
			p.MarketingCampaigns = append(p.MarketingCampaigns, mc)
		}

		// only occupied award slots are stored; surplus entries beyond
		// the capacity are consumed and dropped
		p.CurrentAwards = [world.MaxAwards]world.Award{}
		numAwards := r.Uint32()
		for i := uint32(0); i < numAwards; i++ {
			var a world.Award
			a.Time = r.Uint16()
			a.Type = r.Uint16()
			if i < world.MaxAwards {
				p.CurrentAwards[i] = a
			}
		}

		p.Value = r.Int64()
		p.CompanyValue = r.Int64()
		p.Size = r.Uint32()
		p.NumGuestsInPark = r.Uint32()
		p.NumGuestsHeadingForPark = r.Uint32()
		p.Rating = r.Int16()
		p.RatingCasualtyPenalty = r.Int16()
		p.CurrentExpenditure = r.Int64()
		p.CurrentProfit = r.Int64()
		p.WeeklyProfitAverageDividend = r.Int64()
		p.WeeklyProfitAverageDivisor = r.Uint16()
		p.TotalAdmissions = r.Uint32()
		p.TotalIncomeFromAdmissions = r.Int64()
		p.TotalRideValueForMoney = r.Int16()
		p.NumGuestsInParkLastWeek = r.Uint32()
		p.GuestChangeModifier = r.Uint8()
		p.GuestGenerationProbability = r.Uint32()
		p.SuggestedGuestMaximum = r.Uint16()

		readU8Array(r, p.PeepWarningThrottle[:])
		readU8Array(r, p.RatingHistory[:])
		readU32Array(r, p.GuestsInParkHistory[:])
		readI64Array(r, p.CashHistory[:])
		readI64Array(r, p.WeeklyProfitHistory[:])
		readI64Array(r, p.ValueHistory[:])
		return nil
	})
	return err
}

func (e *Engine) writeParkChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkPark, func(w *binio.Writer) error {
		p := &st.Park
		w.String(p.Name)
		w.Int64(p.Cash)
		w.Int64(p.BankLoan)
		w.Int64(p.MaxBankLoan)
		w.Uint8(p.BankLoanInterestRate)
		w.Uint32(p.Flags)
		w.Int16(p.EntranceFee)
		w.Uint8(p.StaffHandymanColour)
		w.Uint8(p.StaffMechanicColour)
		w.Uint8(p.StaffSecurityColour)
		w.Uint64(p.SamePriceThroughout)

		w.Uint32(world.ExpenditureMonthCount)
		w.Uint32(world.ExpenditureTypeCount)
		for i := 0; i < world.ExpenditureMonthCount; i++ {
			for j := 0; j < world.ExpenditureTypeCount; j++ {
				w.Int64(p.ExpenditureTable[i][j])
			}
		}
		w.Int64(p.HistoricalProfit)

		w.Uint32(uint32(len(p.MarketingCampaigns)))
		for _, mc := range p.MarketingCampaigns {
			w.Uint8(mc.Type)
			w.Uint8(mc.WeeksLeft)
			w.Uint8(mc.Flags)
			w.Uint16(mc.RideID)
		}

		// occupied award slots only
		numAwards := uint32(0)
		for _, a := range p.CurrentAwards {
			if a.Time != 0 {
				numAwards++
			}
		}
		w.Uint32(numAwards)
		for _, a := range p.CurrentAwards {
			if a.Time != 0 {
				w.Uint16(a.Time)
				w.Uint16(a.Type)
			}
		}

		w.Int64(p.Value)
		w.Int64(p.CompanyValue)
		w.Uint32(p.Size)
		w.Uint32(p.NumGuestsInPark)
		w.Uint32(p.NumGuestsHeadingForPark)
		w.Int16(p.Rating)
		w.Int16(p.RatingCasualtyPenalty)
		w.Int64(p.CurrentExpenditure)
		w.Int64(p.CurrentProfit)
		w.Int64(p.WeeklyProfitAverageDividend)
		w.Uint16(p.WeeklyProfitAverageDivisor)
		w.Uint32(p.TotalAdmissions)
		w.Int64(p.TotalIncomeFromAdmissions)
		w.Int16(p.TotalRideValueForMoney)
		w.Uint32(p.NumGuestsInParkLastWeek)
		w.Uint8(p.GuestChangeModifier)
		w.Uint32(p.GuestGenerationProbability)
		w.Uint16(p.SuggestedGuestMaximum)

		writeU8Array(w, p.PeepWarningThrottle[:])
		writeU8Array(w, p.RatingHistory[:])
		writeU32Array(w, p.GuestsInParkHistory[:])
		writeI64Array(w, p.CashHistory[:])
		writeI64Array(w, p.WeeklyProfitHistory[:])
		writeI64Array(w, p.ValueHistory[:])
		return nil
	})
}

// Fixed-capacity history tables are stored as counted arrays. A file
// written with a larger capacity truncates; a smaller one leaves the
// tail zeroed.

func readU8Array(r *binio.Reader, dst []uint8) {
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		v := r.Uint8()
		if int(i) < len(dst) {
			dst[i] = v
		}
	}
}

func writeU8Array(w *binio.Writer, src []uint8) {
	w.Uint32(uint32(len(src)))
	for _, v := range src {
		w.Uint8(v)
	}
}

func readU16Array(r *binio.Reader, dst []uint16) {
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		v := r.Uint16()
		if int(i) < len(dst) {
			dst[i] = v
		}
	}
}

func writeU16Array(w *binio.Writer, src []uint16) {
	w.Uint32(uint32(len(src)))
	for _, v := range src {
		w.Uint16(v)
	}
}

func readU32Array(r *binio.Reader, dst []uint32) {
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		v := r.Uint32()
		if int(i) < len(dst) {
			dst[i] = v
		}
	}
}

func writeU32Array(w *binio.Writer, src []uint32) {
	w.Uint32(uint32(len(src)))
	for _, v := range src {
		w.Uint32(v)
	}
}

func readI64Array(r *binio.Reader, dst []int64) {
	count := r.Uint32()
	for i := uint32(0); i < count; i++ {
		v := r.Int64()
		if int(i) < len(dst) {
			dst[i] = v
		}
	}
}

func writeI64Array(w *binio.Writer, src []int64) {
	w.Uint32(uint32(len(src)))
	for _, v := range src {
		w.Int64(v)
	}
}
