package quality

import (
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/quality"
)

// ToPercentages DTO → entity.
func ToPercentages(p dto.PercentagesDTO) entity.Percentages {
	return entity.Percentages{
		PetConforming:      p.PetConforming,
		OtherConforming:    p.OtherConforming,
		Tracers:            p.Tracers,
		Crates:             p.Crates,
		CertifiedPackaging: p.CertifiedPackaging,
		MiscPackaging:      p.MiscPackaging,
		ForeignFraction:    p.ForeignFraction,
		FineFraction:       p.FineFraction,
		NeutralFraction:    p.NeutralFraction,
	}
}

// ToPercentagesDTO entity → DTO.
func ToPercentagesDTO(p entity.Percentages) dto.PercentagesDTO {
	return dto.PercentagesDTO{
		PetConforming:      p.PetConforming,
		OtherConforming:    p.OtherConforming,
		Tracers:            p.Tracers,
		Crates:             p.Crates,
		CertifiedPackaging: p.CertifiedPackaging,
		MiscPackaging:      p.MiscPackaging,
		ForeignFraction:    p.ForeignFraction,
		FineFraction:       p.FineFraction,
		NeutralFraction:    p.NeutralFraction,
	}
}

// ToSampleResponse entity → DTO con total, aviso de suma y señal rápida.
func ToSampleResponse(s *entity.QualitySample) *dto.SampleResponse {
	total, warn := quality.SumWarning(s.Percentages)
	violations := s.Violations
	if violations == nil {
		violations = []string{}
	}
	return &dto.SampleResponse{
		ID:             s.ID,
		SampleDate:     dto.FormatDate(s.SampleDate),
		FormNumber:     s.FormNumber,
		FormDate:       dto.FormatOptionalDate(s.FormDate),
		MunicipalityID: s.MunicipalityID,
		FlowID:         s.FlowID,
		SampleWeightKg: s.SampleWeightKg,
		Notes:          s.Notes,
		PercentagesDTO: ToPercentagesDTO(s.Percentages),
		Total:          total,
		SumWarning:     warn,
		FastConforming: quality.FastConforming(s.Percentages),
		Status:         s.Status(),
		Validated:      s.Validated,
		ValidatedAt:    s.ValidatedAt,
		ValidatedBy:    s.ValidatedBy,
		Conforme:       s.Conforming,
		Violations:     violations,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toConformityResponse(sampleID string, p entity.Percentages, flow *entity.CollectionFlow, v quality.Verdict) dto.ConformityResponse {
	out := dto.ConformityResponse{
		SampleID:               sampleID,
		FlowID:                 flow.ID,
		FlowCode:               flow.Code,
		Conforme:               v.Conforming,
		Violations:             v.Violations,
		Details:                make([]dto.ViolationDTO, 0, len(v.Details)),
		FastConforming:         quality.FastConforming(p),
		ConformingPlasticTotal: quality.ConformingPlasticTotal(p),
		Limits: dto.FlowLimitsDTO{
			MaxTracers:           flow.MaxTracers,
			MaxForeignFraction:   flow.MaxForeignFraction,
			MinConformingPlastic: flow.MinConformingPlastic,
		},
	}
	if out.Violations == nil {
		out.Violations = []string{}
	}
	for _, d := range v.Details {
		out.Details = append(out.Details, dto.ViolationDTO{Code: d.Code, Message: d.Message, Observed: d.Observed, Limit: d.Limit})
	}
	return out
}
